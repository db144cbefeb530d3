package domain

import "time"

// ConnectionStatus is one side's position in a connection pair.
type ConnectionStatus string

const (
	StatusPending  ConnectionStatus = "pending"
	StatusAccepted ConnectionStatus = "accepted"
	StatusRejected ConnectionStatus = "rejected"
)

func (s ConnectionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Connection is the single record per candidate/startup pair. IsMatched is
// derived: true exactly when both sides are accepted.
type Connection struct {
	ID                 int              `json:"connectionID" db:"id"`
	CandidateProfileID int              `json:"candidateProfileID" db:"candidate_profile_id"`
	StartupProfileID   int              `json:"startupProfileID" db:"startup_profile_id"`
	CandidateStatus    ConnectionStatus `json:"candidateStatus" db:"candidate_status"`
	StartupStatus      ConnectionStatus `json:"startupStatus" db:"startup_status"`
	IsMatched          bool             `json:"isMatched" db:"is_matched"`
	MatchedAt          *time.Time       `json:"matchedAt" db:"matched_at"`

	CandidateNotifications int `json:"candidateNotifications" db:"candidate_notifications"`
	StartupNotifications   int `json:"startupNotifications" db:"startup_notifications"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (c *Connection) HasProfile(profileID int) bool {
	return c.CandidateProfileID == profileID || c.StartupProfileID == profileID
}

// SideStatus returns the status recorded by the startup side when
// startupSide is true, otherwise the candidate side's.
func (c *Connection) SideStatus(startupSide bool) ConnectionStatus {
	if startupSide {
		return c.StartupStatus
	}
	return c.CandidateStatus
}

// OtherProfileID returns the opposite participant of profileID, and false
// when profileID is not part of this record.
func (c *Connection) OtherProfileID(profileID int) (int, bool) {
	switch profileID {
	case c.CandidateProfileID:
		return c.StartupProfileID, true
	case c.StartupProfileID:
		return c.CandidateProfileID, true
	}
	return 0, false
}
