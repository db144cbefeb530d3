package discovery_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository/memory"
	"github.com/venturelink/venturelink-backend/internal/usecase/discovery"
)

type fixture struct {
	uc       *discovery.UseCase
	conns    *memory.ConnectionRepository
	profiles *memory.ProfileRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conns := memory.NewConnectionRepository()
	profiles := memory.NewProfileRepository()
	return &fixture{
		uc:       discovery.NewUseCase(profiles, conns),
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

func (f *fixture) addConnection(t *testing.T, conn domain.Connection) {
	t.Helper()
	require.NoError(t, f.conns.Create(context.Background(), &conn))
}

func resultIDs(t *testing.T, page *discovery.Page) []int {
	t.Helper()
	profiles, ok := page.Results.([]*domain.Profile)
	require.True(t, ok)
	ids := make([]int, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestDiscover_ExcludesOwnMatchedAndRejecting(t *testing.T) {
	f := newFixture(t)
	// Caller user 1 owns candidate 1 and startup 2.
	f.addProfile(t, 1, 1, false)
	f.addProfile(t, 2, 1, true)
	f.addProfile(t, 3, 2, true) // matched with 1
	f.addProfile(t, 4, 3, true) // rejected 1
	f.addProfile(t, 5, 4, true) // pending, stays discoverable
	f.addProfile(t, 6, 5, true) // untouched

	now := time.Now()
	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 3,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusAccepted,
		IsMatched: true, MatchedAt: &now,
	})
	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 4,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusRejected,
	})
	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 5,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusPending,
	})

	page, err := f.uc.Discover(context.Background(), 1, 1, 1, 20)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 6}, resultIDs(t, page))
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestDiscover_RejectionByRequesterDoesNotExclude(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	f.addProfile(t, 2, 2, true)

	// Candidate 1 itself rejected startup 2; 2 stays discoverable for 1
	// because only the opposite side's rejection excludes.
	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 2,
		CandidateStatus: domain.StatusRejected, StartupStatus: domain.StatusAccepted,
	})

	page, err := f.uc.Discover(context.Background(), 1, 1, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, resultIDs(t, page))
}

func TestDiscover_Ownership(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)

	_, err := f.uc.Discover(context.Background(), 2, 1, 1, 20)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.uc.Discover(context.Background(), 1, 99, 1, 20)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestDiscover_PaginationIsStable(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	for id := 2; id <= 8; id++ {
		f.addProfile(t, id, id, true)
	}

	first, err := f.uc.Discover(context.Background(), 1, 1, 1, 3)
	require.NoError(t, err)
	second, err := f.uc.Discover(context.Background(), 1, 1, 2, 3)
	require.NoError(t, err)
	firstAgain, err := f.uc.Discover(context.Background(), 1, 1, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, resultIDs(t, first))
	assert.Equal(t, []int{5, 6, 7}, resultIDs(t, second))
	assert.Equal(t, resultIDs(t, first), resultIDs(t, firstAgain))

	assert.Equal(t, 7, first.Total)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)
	assert.True(t, second.HasPrev)
}

func TestDiscover_DefaultsPageAndPerPage(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	f.addProfile(t, 2, 2, true)

	page, err := f.uc.Discover(context.Background(), 1, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, discovery.DefaultPerPage, page.PerPage)
}

func TestGetConnections_ListsMatchesMostRecentFirst(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	f.addProfile(t, 2, 2, true)
	f.addProfile(t, 3, 3, true)

	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 2,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusAccepted,
		IsMatched: true, MatchedAt: &older,
	})
	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 3,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusAccepted,
		IsMatched: true, MatchedAt: &newer,
	})

	page, err := f.uc.GetConnections(context.Background(), 1, 1, 1, 20)
	require.NoError(t, err)

	cards, ok := page.Results.([]discovery.PreviewCard)
	require.True(t, ok)
	require.Len(t, cards, 2)
	assert.Equal(t, 3, cards[0].ProfileID)
	assert.Equal(t, 2, cards[1].ProfileID)
	assert.Equal(t, "tech", cards[0].Industry)
	assert.Equal(t, 2, page.Total)
}

func TestGetConnections_DefaultsToFivePerPage(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	for id := 2; id <= 8; id++ {
		f.addProfile(t, id, id, true)
		matchedAt := time.Now().Add(time.Duration(id) * time.Second)
		f.addConnection(t, domain.Connection{
			CandidateProfileID: 1, StartupProfileID: id,
			CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusAccepted,
			IsMatched: true, MatchedAt: &matchedAt,
		})
	}

	page, err := f.uc.GetConnections(context.Background(), 1, 1, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, discovery.ConnectionsPerPage, page.PerPage)
	cards, ok := page.Results.([]discovery.PreviewCard)
	require.True(t, ok)
	assert.Len(t, cards, discovery.ConnectionsPerPage)
	assert.Equal(t, 7, page.Total)
	assert.True(t, page.HasNext)
}

func TestGetConnections_ExcludesUnmatchedPairs(t *testing.T) {
	f := newFixture(t)
	f.addProfile(t, 1, 1, false)
	f.addProfile(t, 2, 2, true)

	f.addConnection(t, domain.Connection{
		CandidateProfileID: 1, StartupProfileID: 2,
		CandidateStatus: domain.StatusAccepted, StartupStatus: domain.StatusPending,
	})

	page, err := f.uc.GetConnections(context.Background(), 1, 1, 1, 20)
	require.NoError(t, err)
	cards, ok := page.Results.([]discovery.PreviewCard)
	require.True(t, ok)
	assert.Empty(t, cards)
	assert.Equal(t, 0, page.Total)
}
