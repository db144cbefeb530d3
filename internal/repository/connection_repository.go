package repository

import (
	"context"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
)

type ConnectionRepository interface {
	// Create inserts a new pair record. A concurrent insert for the same
	// pair surfaces as domain.ErrConflict via the unique pair constraint.
	Create(ctx context.Context, conn *domain.Connection) error
	GetByPair(ctx context.Context, candidateProfileID, startupProfileID int) (*domain.Connection, error)
	// UpdateStatuses is a conditional compare-and-swap: the row is mutated
	// only while both stored side statuses still equal the expected values.
	// A lost race returns domain.ErrConflict with no mutation.
	UpdateStatuses(ctx context.Context, id int,
		expectCandidate, expectStartup domain.ConnectionStatus,
		newCandidate, newStartup domain.ConnectionStatus,
		isMatched bool, matchedAt *time.Time) error
	IncrementNotifications(ctx context.Context, id int, startupSide bool) error
	// MatchedProfileIDs returns the opposite-side profile of every matched
	// record involving profileID, most recent match first.
	MatchedProfileIDs(ctx context.Context, profileID int) ([]int, error)
	// RejectedProfileIDs returns opposite-side profiles whose own status in a
	// record with profileID is rejected. isStartup is profileID's role.
	RejectedProfileIDs(ctx context.Context, profileID int, isStartup bool) ([]int, error)
	IsMatchedBetween(ctx context.Context, profileID, otherProfileID int) (bool, error)
	CountPending(ctx context.Context, profileID int) (int, error)
	CountMatched(ctx context.Context, profileID int) (int, error)
}
