package memory

import (
	"context"
	"sync"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type PrivacyRepository struct {
	mu       sync.Mutex
	settings map[int]*domain.PrivacySettings
}

func NewPrivacyRepository() *PrivacyRepository {
	return &PrivacyRepository{settings: make(map[int]*domain.PrivacySettings)}
}

var _ repository.PrivacyRepository = (*PrivacyRepository)(nil)

func (r *PrivacyRepository) Create(_ context.Context, settings *domain.PrivacySettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *settings
	r.settings[settings.ProfileID] = &clone
	return nil
}

func (r *PrivacyRepository) GetByProfileID(_ context.Context, profileID int) (*domain.PrivacySettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	settings, ok := r.settings[profileID]
	if !ok {
		return nil, domain.ErrPrivacyNotFound
	}
	clone := *settings
	return &clone, nil
}

func (r *PrivacyRepository) Update(_ context.Context, settings *domain.PrivacySettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.settings[settings.ProfileID]; !ok {
		return domain.ErrPrivacyNotFound
	}
	clone := *settings
	r.settings[settings.ProfileID] = &clone
	return nil
}
