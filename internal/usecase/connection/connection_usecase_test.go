package connection_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository/memory"
	"github.com/venturelink/venturelink-backend/internal/usecase/connection"
)

// staleReadConnRepo reports the pair as absent for the first lookups even
// though the backing store already holds it, reproducing an insert that
// lands between the lookup and the create.
type staleReadConnRepo struct {
	*memory.ConnectionRepository
	staleReads int
}

func (r *staleReadConnRepo) GetByPair(ctx context.Context, candidateProfileID, startupProfileID int) (*domain.Connection, error) {
	if r.staleReads > 0 {
		r.staleReads--
		return nil, domain.ErrConnectionNotFound
	}
	return r.ConnectionRepository.GetByPair(ctx, candidateProfileID, startupProfileID)
}

// stuckUpdateConnRepo loses every compare-and-swap.
type stuckUpdateConnRepo struct {
	*memory.ConnectionRepository
	updateCalls int
}

func (r *stuckUpdateConnRepo) UpdateStatuses(_ context.Context, _ int,
	_, _ domain.ConnectionStatus, _, _ domain.ConnectionStatus,
	_ bool, _ *time.Time,
) error {
	r.updateCalls++
	return domain.ErrConflict
}

type fixture struct {
	uc       *connection.UseCase
	conns    *memory.ConnectionRepository
	profiles *memory.ProfileRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conns := memory.NewConnectionRepository()
	profiles := memory.NewProfileRepository()
	return &fixture{
		uc:       connection.NewUseCase(conns, profiles),
		conns:    conns,
		profiles: profiles,
	}
}

func (f *fixture) addProfile(t *testing.T, id, userID int, isStartup bool) {
	t.Helper()
	err := f.profiles.Create(context.Background(), &domain.Profile{
		ID:        id,
		UserID:    userID,
		IsStartup: isStartup,
		Name:      "profile",
		Email:     "p@example.com",
		Industry:  "tech",
	})
	require.NoError(t, err)
}

func TestRequestConnection_FirstRequestCreatesPending(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	result, err := f.uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, "Connection request sent successfully. Waiting for approval.", result.Message)

	conn, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, conn.StartupStatus)
	assert.Equal(t, domain.StatusPending, conn.CandidateStatus)
	assert.False(t, conn.IsMatched)
	assert.Nil(t, conn.MatchedAt)
	assert.Equal(t, 1, conn.CandidateNotifications)
	assert.Equal(t, 0, conn.StartupNotifications)
}

func TestRequestConnection_TwoStepMatch(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	_, err := f.uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)

	result, err := f.uc.RequestConnection(context.Background(), 2, 7, 11)
	require.NoError(t, err)
	assert.True(t, result.Matched)

	conn, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, conn.CandidateStatus)
	assert.Equal(t, domain.StatusAccepted, conn.StartupStatus)
	assert.True(t, conn.IsMatched)
	require.NotNil(t, conn.MatchedAt)

	// Further requests from either side now refuse.
	_, err = f.uc.RequestConnection(context.Background(), 1, 11, 7)
	assert.ErrorIs(t, err, domain.ErrAlreadyConnected)
	_, err = f.uc.RequestConnection(context.Background(), 2, 7, 11)
	assert.ErrorIs(t, err, domain.ErrAlreadyConnected)
}

func TestRequestConnection_RepeatWhilePending(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	_, err := f.uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)

	_, err = f.uc.RequestConnection(context.Background(), 1, 11, 7)
	assert.ErrorIs(t, err, domain.ErrPendingApproval)
}

func TestRequestConnection_RejectionIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	_, err := f.uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)

	// Candidate 7 rejects the request.
	conn, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	err = f.conns.UpdateStatuses(context.Background(), conn.ID,
		conn.CandidateStatus, conn.StartupStatus,
		domain.StatusRejected, conn.StartupStatus,
		false, nil)
	require.NoError(t, err)

	_, err = f.uc.RequestConnection(context.Background(), 1, 11, 7)
	assert.ErrorIs(t, err, domain.ErrRecipientRejected)

	// The rejecting side cannot revive the pair either.
	_, err = f.uc.RequestConnection(context.Background(), 2, 7, 11)
	assert.ErrorIs(t, err, domain.ErrRecipientRejected)

	// Record stayed unmutated.
	after, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, after.CandidateStatus)
	assert.Equal(t, domain.StatusAccepted, after.StartupStatus)
	assert.False(t, after.IsMatched)
}

func TestRequestConnection_SelfConnection(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)

	_, err := f.uc.RequestConnection(context.Background(), 1, 11, 11)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequestConnection_InvalidIDs(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RequestConnection(context.Background(), 1, 0, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.RequestConnection(context.Background(), 1, 11, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequestConnection_SameRolePair(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, true)
	f.addProfile(t, 2, 2, true)
	f.addProfile(t, 3, 1, false)
	f.addProfile(t, 4, 2, false)

	_, err := f.uc.RequestConnection(context.Background(), 1, 1, 2)
	assert.ErrorIs(t, err, domain.ErrSameRolePair)

	_, err = f.uc.RequestConnection(context.Background(), 1, 3, 4)
	assert.ErrorIs(t, err, domain.ErrSameRolePair)
}

func TestRequestConnection_Ownership(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	// Caller 2 does not own profile 11.
	_, err := f.uc.RequestConnection(context.Background(), 2, 11, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Unknown from profile reads as forbidden, not as not found.
	_, err = f.uc.RequestConnection(context.Background(), 1, 99, 7)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Unknown target stays a 404.
	_, err = f.uc.RequestConnection(context.Background(), 1, 11, 99)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRequestConnection_PairSpecificState(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)
	f.addProfile(t, 9, 3, true)

	_, err := f.uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)
	result, err := f.uc.RequestConnection(context.Background(), 2, 7, 11)
	require.NoError(t, err)
	require.True(t, result.Matched)

	// 7 being matched with 11 does not affect a fresh pair with 9.
	result, err = f.uc.RequestConnection(context.Background(), 3, 9, 7)
	require.NoError(t, err)
	assert.False(t, result.Matched)

	conn, err := f.conns.GetByPair(context.Background(), 7, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAccepted, conn.StartupStatus)
	assert.Equal(t, domain.StatusPending, conn.CandidateStatus)
}

func TestRequestConnection_MatchNotifiesWaitingSide(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	_, err := f.uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)
	_, err = f.uc.RequestConnection(context.Background(), 2, 7, 11)
	require.NoError(t, err)

	conn, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, conn.CandidateNotifications)
	assert.Equal(t, 1, conn.StartupNotifications)
}

func TestRequestConnection_RetriesWhenInsertLosesRace(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	// Candidate 7's request is already stored but the startup's first
	// lookup misses it, so its insert collides with the existing pair.
	require.NoError(t, f.conns.Create(context.Background(), &domain.Connection{
		CandidateProfileID: 7,
		StartupProfileID:   11,
		CandidateStatus:    domain.StatusAccepted,
		StartupStatus:      domain.StatusPending,
	}))
	racing := &staleReadConnRepo{ConnectionRepository: f.conns, staleReads: 1}
	uc := connection.NewUseCase(racing, f.profiles)

	result, err := uc.RequestConnection(context.Background(), 1, 11, 7)
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Zero(t, racing.staleReads)

	conn, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.True(t, conn.IsMatched)
}

func TestRequestConnection_RetryResolvesToPendingApproval(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	// The startup's own earlier request raced in; the retry re-reads it and
	// refuses the repeat instead of creating a duplicate pair.
	require.NoError(t, f.conns.Create(context.Background(), &domain.Connection{
		CandidateProfileID: 7,
		StartupProfileID:   11,
		CandidateStatus:    domain.StatusPending,
		StartupStatus:      domain.StatusAccepted,
	}))
	racing := &staleReadConnRepo{ConnectionRepository: f.conns, staleReads: 1}
	uc := connection.NewUseCase(racing, f.profiles)

	_, err := uc.RequestConnection(context.Background(), 1, 11, 7)
	assert.ErrorIs(t, err, domain.ErrPendingApproval)
}

func TestRequestConnection_ConflictAfterRetriesExhausted(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	require.NoError(t, f.conns.Create(context.Background(), &domain.Connection{
		CandidateProfileID: 7,
		StartupProfileID:   11,
		CandidateStatus:    domain.StatusAccepted,
		StartupStatus:      domain.StatusPending,
	}))
	stuck := &stuckUpdateConnRepo{ConnectionRepository: f.conns}
	uc := connection.NewUseCase(stuck, f.profiles)

	_, err := uc.RequestConnection(context.Background(), 1, 11, 7)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 3, stuck.updateCalls)

	// The losing request left the record untouched.
	conn, err := f.conns.GetByPair(context.Background(), 7, 11)
	require.NoError(t, err)
	assert.False(t, conn.IsMatched)
	assert.Equal(t, domain.StatusPending, conn.StartupStatus)
	assert.Equal(t, 0, conn.CandidateNotifications)
}

func TestRequestConnection_CorruptStoredStatus(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 11, 1, true)
	f.addProfile(t, 7, 2, false)

	err := f.conns.Create(context.Background(), &domain.Connection{
		CandidateProfileID: 7,
		StartupProfileID:   11,
		CandidateStatus:    "banana",
		StartupStatus:      domain.StatusAccepted,
	})
	require.NoError(t, err)

	_, err = f.uc.RequestConnection(context.Background(), 1, 11, 7)
	assert.ErrorIs(t, err, domain.ErrCorruptState)
}
