package repository

import (
	"context"

	"github.com/venturelink/venturelink-backend/internal/domain"
)

type PrivacyRepository interface {
	Create(ctx context.Context, settings *domain.PrivacySettings) error
	GetByProfileID(ctx context.Context, profileID int) (*domain.PrivacySettings, error)
	Update(ctx context.Context, settings *domain.PrivacySettings) error
}
