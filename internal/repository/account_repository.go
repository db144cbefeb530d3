package repository

import (
	"context"

	"github.com/venturelink/venturelink-backend/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
