package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type ActivityRepository struct {
	mu     sync.Mutex
	nextID int
	views  []*domain.ProfileView
	saves  []*domain.SavedProfile
	skips  []*domain.SkippedProfile

	// now is swappable so tests can control event timestamps.
	now func() time.Time
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{nextID: 1, now: time.Now}
}

// SetClock replaces the timestamp source.
func (r *ActivityRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)

func (r *ActivityRepository) CreateView(_ context.Context, fromProfileID, toProfileID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, &domain.ProfileView{
		ID:            r.nextID,
		FromProfileID: fromProfileID,
		ToProfileID:   toProfileID,
		ViewedAt:      r.now(),
	})
	r.nextID++
	return nil
}

func (r *ActivityRepository) CreateSave(_ context.Context, fromProfileID, toProfileID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, &domain.SavedProfile{
		ID:            r.nextID,
		FromProfileID: fromProfileID,
		ToProfileID:   toProfileID,
		SavedAt:       r.now(),
	})
	r.nextID++
	return nil
}

func (r *ActivityRepository) CreateSkip(_ context.Context, fromProfileID, toProfileID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skips = append(r.skips, &domain.SkippedProfile{
		ID:            r.nextID,
		FromProfileID: fromProfileID,
		ToProfileID:   toProfileID,
		SkippedAt:     r.now(),
	})
	r.nextID++
	return nil
}

func (r *ActivityRepository) ListViewers(_ context.Context, profileID int, limit, offset int) ([]*domain.ProfileView, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.ProfileView
	for _, v := range r.views {
		if v.ToProfileID == profileID {
			clone := *v
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ViewedAt.After(matched[j].ViewedAt) })
	total := len(matched)
	return pageOf(matched, limit, offset), total, nil
}

func (r *ActivityRepository) ListSaved(_ context.Context, profileID int, limit, offset int) ([]*domain.SavedProfile, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.SavedProfile
	for _, s := range r.saves {
		if s.FromProfileID == profileID {
			clone := *s
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SavedAt.After(matched[j].SavedAt) })
	total := len(matched)
	return pageOf(matched, limit, offset), total, nil
}

func (r *ActivityRepository) ListSkipped(_ context.Context, profileID int, limit, offset int) ([]*domain.SkippedProfile, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.SkippedProfile
	for _, s := range r.skips {
		if s.FromProfileID == profileID {
			clone := *s
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SkippedAt.After(matched[j].SkippedAt) })
	total := len(matched)
	return pageOf(matched, limit, offset), total, nil
}

func (r *ActivityRepository) CountViews(_ context.Context, profileID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, v := range r.views {
		if v.ToProfileID == profileID {
			count++
		}
	}
	return count, nil
}

func (r *ActivityRepository) ViewHistory(_ context.Context, profileID int, since time.Time) ([]domain.ViewBucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int)
	for _, v := range r.views {
		if v.ToProfileID == profileID && !v.ViewedAt.Before(since) {
			counts[v.ViewedAt.Format("2006-01-02")]++
		}
	}
	buckets := make([]domain.ViewBucket, 0, len(counts))
	for day, count := range counts {
		buckets = append(buckets, domain.ViewBucket{Day: day, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Day > buckets[j].Day })
	return buckets, nil
}

func (r *ActivityRepository) RecentViewerIDs(_ context.Context, profileID int, limit int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	latest := make(map[int]time.Time)
	for _, v := range r.views {
		if v.ToProfileID == profileID {
			if t, ok := latest[v.FromProfileID]; !ok || v.ViewedAt.After(t) {
				latest[v.FromProfileID] = v.ViewedAt
			}
		}
	}
	ids := make([]int, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return latest[ids[i]].After(latest[ids[j]]) })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func pageOf[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
