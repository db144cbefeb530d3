package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type ProfileRepository struct {
	mu       sync.Mutex
	nextID   int
	profiles map[int]*domain.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{nextID: 1, profiles: make(map[int]*domain.Profile)}
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) Create(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == 0 {
		profile.ID = r.nextID
	}
	if profile.ID >= r.nextID {
		r.nextID = profile.ID + 1
	}
	profile.CreatedAt = time.Now()
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *ProfileRepository) GetByID(_ context.Context, id int) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *profile
	return &clone, nil
}

func (r *ProfileRepository) GetWithRelated(ctx context.Context, id int) (*domain.Profile, error) {
	return r.GetByID(ctx, id)
}

func (r *ProfileRepository) GetByIDs(_ context.Context, ids []int) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Profile
	for _, id := range ids {
		if profile, ok := r.profiles[id]; ok {
			clone := *profile
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *ProfileRepository) ListByOwner(_ context.Context, userID int) ([]*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Profile
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			clone := *profile
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProfileRepository) Update(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[profile.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *ProfileRepository) DiscoverPage(_ context.Context, excludedIDs []int, limit, offset int) ([]*domain.Profile, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	excluded := make(map[int]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = true
	}
	var eligible []*domain.Profile
	for _, profile := range r.profiles {
		if !excluded[profile.ID] {
			clone := *profile
			eligible = append(eligible, &clone)
		}
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].ID < eligible[j].ID })
	total := len(eligible)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return eligible[offset:end], total, nil
}
