package domain

import "time"

// ProfileView is an append-only record of one profile viewing another.
// Views accumulate; there is no uniqueness constraint.
type ProfileView struct {
	ID            int       `json:"viewID" db:"view_id"`
	FromProfileID int       `json:"fromProfileID" db:"from_profile_id"`
	ToProfileID   int       `json:"toProfileID" db:"to_profile_id"`
	ViewedAt      time.Time `json:"viewedAt" db:"viewed_at"`
}

type SavedProfile struct {
	ID            int       `json:"saveID" db:"save_id"`
	FromProfileID int       `json:"fromProfileID" db:"from_profile_id"`
	ToProfileID   int       `json:"toProfileID" db:"to_profile_id"`
	SavedAt       time.Time `json:"savedAt" db:"saved_at"`
}

type SkippedProfile struct {
	ID            int       `json:"skipID" db:"skip_id"`
	FromProfileID int       `json:"fromProfileID" db:"from_profile_id"`
	ToProfileID   int       `json:"toProfileID" db:"to_profile_id"`
	SkippedAt     time.Time `json:"skippedAt" db:"skipped_at"`
}

// ViewBucket is one day of aggregated view counts for dashboards.
type ViewBucket struct {
	Day   string `json:"time" db:"day"`
	Count int    `json:"count" db:"count"`
}
