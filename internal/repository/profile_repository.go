package repository

import (
	"context"

	"github.com/venturelink/venturelink-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	// GetWithRelated loads the profile plus experiences, certificates,
	// achievements and job positions.
	GetWithRelated(ctx context.Context, id int) (*domain.Profile, error)
	// GetByIDs returns the profiles for ids in the given order, skipping
	// ids that no longer exist.
	GetByIDs(ctx context.Context, ids []int) ([]*domain.Profile, error)
	ListByOwner(ctx context.Context, userID int) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	// DiscoverPage returns profiles outside the exclusion set ordered by
	// profile ID ascending, plus the total count before paging.
	DiscoverPage(ctx context.Context, excludedIDs []int, limit, offset int) ([]*domain.Profile, int, error)
}
