package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

type AccountRepository struct {
	mu       sync.Mutex
	nextID   int
	accounts map[int]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{nextID: 1, accounts: make(map[int]*domain.Account)}
}

var _ repository.AccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return domain.ErrEmailTaken
		}
	}
	account.ID = r.nextID
	r.nextID++
	account.CreatedAt = time.Now()
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, id int) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			clone := *account
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}
