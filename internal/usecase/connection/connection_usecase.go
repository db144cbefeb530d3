// Package connection implements the per-pair request state machine that
// decides when a candidate profile and a startup profile become matched.
package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

// maxAttempts bounds the optimistic retry loop around the read-then-write
// sequence. A pair that keeps losing the race surfaces domain.ErrConflict.
const maxAttempts = 3

type UseCase struct {
	connRepo    repository.ConnectionRepository
	profileRepo repository.ProfileRepository
}

func NewUseCase(
	connRepo repository.ConnectionRepository,
	profileRepo repository.ProfileRepository,
) *UseCase {
	return &UseCase{
		connRepo:    connRepo,
		profileRepo: profileRepo,
	}
}

// Result reports the outcome of a successful connect request.
type Result struct {
	Matched bool   `json:"matched"`
	Message string `json:"message"`
}

// RequestConnection applies one connect request from fromProfileID to
// toProfileID on behalf of callerUserID.
//
// The first request for a pair creates the record with the initiator's side
// accepted and the recipient's side pending. A later request from the other
// side completes the match. Rejected is terminal for the pair; a repeat
// request while the recipient is still pending is refused, not re-sent.
func (uc *UseCase) RequestConnection(ctx context.Context, callerUserID, fromProfileID, toProfileID int) (*Result, error) {
	if fromProfileID <= 0 || toProfileID <= 0 || fromProfileID == toProfileID {
		return nil, domain.ErrInvalidInput
	}

	from, err := uc.profileRepo.GetByID(ctx, fromProfileID)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("failed to get requesting profile: %w", err)
	}
	if from.UserID != callerUserID {
		return nil, domain.ErrForbidden
	}

	to, err := uc.profileRepo.GetByID(ctx, toProfileID)
	if err != nil {
		return nil, err
	}

	if from.IsStartup == to.IsStartup {
		return nil, domain.ErrSameRolePair
	}

	candidateID, startupID := fromProfileID, toProfileID
	if from.IsStartup {
		candidateID, startupID = toProfileID, fromProfileID
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := uc.applyRequest(ctx, candidateID, startupID, from.IsStartup)
		if err == domain.ErrConflict {
			// Lost a concurrent race for the same pair; re-read and retry.
			continue
		}
		return result, err
	}
	return nil, domain.ErrConflict
}

func (uc *UseCase) applyRequest(ctx context.Context, candidateID, startupID int, callerIsStartup bool) (*Result, error) {
	conn, err := uc.connRepo.GetByPair(ctx, candidateID, startupID)
	if err == domain.ErrConnectionNotFound {
		return uc.createRequest(ctx, candidateID, startupID, callerIsStartup)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up connection: %w", err)
	}

	if conn.IsMatched {
		return nil, domain.ErrAlreadyConnected
	}

	// Rejected is terminal for whichever side recorded it; a caller who
	// rejected the pair cannot revive it by requesting again.
	if conn.SideStatus(callerIsStartup) == domain.StatusRejected {
		return nil, domain.ErrRecipientRejected
	}

	switch conn.SideStatus(!callerIsStartup) {
	case domain.StatusAccepted:
		now := time.Now()
		err := uc.connRepo.UpdateStatuses(ctx, conn.ID,
			conn.CandidateStatus, conn.StartupStatus,
			domain.StatusAccepted, domain.StatusAccepted,
			true, &now,
		)
		if err != nil {
			return nil, err
		}
		// Notify the side that has been waiting for this acceptance.
		if err := uc.connRepo.IncrementNotifications(ctx, conn.ID, !callerIsStartup); err != nil {
			return nil, fmt.Errorf("failed to bump notification counter: %w", err)
		}
		return &Result{
			Matched: true,
			Message: "Connection request sent successfully. You are now connected with this profile.",
		}, nil
	case domain.StatusRejected:
		return nil, domain.ErrRecipientRejected
	case domain.StatusPending:
		return nil, domain.ErrPendingApproval
	default:
		return nil, fmt.Errorf("%w: stored status %q", domain.ErrCorruptState, conn.SideStatus(!callerIsStartup))
	}
}

func (uc *UseCase) createRequest(ctx context.Context, candidateID, startupID int, callerIsStartup bool) (*Result, error) {
	conn := &domain.Connection{
		CandidateProfileID: candidateID,
		StartupProfileID:   startupID,
	}
	if callerIsStartup {
		conn.StartupStatus = domain.StatusAccepted
		conn.CandidateStatus = domain.StatusPending
		conn.CandidateNotifications = 1
	} else {
		conn.CandidateStatus = domain.StatusAccepted
		conn.StartupStatus = domain.StatusPending
		conn.StartupNotifications = 1
	}
	if err := uc.connRepo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return &Result{
		Matched: false,
		Message: "Connection request sent successfully. Waiting for approval.",
	}, nil
}
