package dashboard_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository/memory"
	"github.com/venturelink/venturelink-backend/internal/usecase/dashboard"
)

type fixture struct {
	uc       *dashboard.UseCase
	events   *memory.ActivityRepository
	conns    *memory.ConnectionRepository
	profiles *memory.ProfileRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	events := memory.NewActivityRepository()
	conns := memory.NewConnectionRepository()
	profiles := memory.NewProfileRepository()
	return &fixture{
		uc:       dashboard.NewUseCase(events, conns, profiles, nil, slog.Default()),
		events:   events,
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

func TestGetSummary_Aggregates(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	f.addProfile(t, 2, 2, true)
	f.addProfile(t, 3, 3, true)

	require.NoError(t, f.events.CreateView(context.Background(), 2, 1))
	require.NoError(t, f.events.CreateView(context.Background(), 2, 1))
	require.NoError(t, f.events.CreateView(context.Background(), 3, 1))

	now := time.Now()
	require.NoError(t, f.conns.Create(context.Background(), &domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 2,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusAccepted,
		IsMatched: true, MatchedAt: &now,
	}))
	require.NoError(t, f.conns.Create(context.Background(), &domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 3,
		CandidateStatus: domain.StatusPending, StartupStatus: domain.StatusAccepted,
	}))

	summary, err := f.uc.GetSummary(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ViewedCount)
	assert.Equal(t, 1, summary.ConnectRequestCount)
	assert.Equal(t, 1, summary.MatchedProfilesCount)
	require.NotEmpty(t, summary.ViewedHistory)
	assert.Equal(t, 3, summary.ViewedHistory[0].Count)

	require.Len(t, summary.RecentViewers, 2)
	assert.Equal(t, "tech", summary.RecentViewers[0].Occupation)
}

func TestGetSummary_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)

	_, err := f.uc.GetSummary(context.Background(), 2, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.GetSummary(context.Background(), 1, 99)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestGetSummary_EmptyProfile(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)

	summary, err := f.uc.GetSummary(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Zero(t, summary.ViewedCount)
	assert.Empty(t, summary.ViewedHistory)
	assert.Empty(t, summary.RecentViewers)
}
