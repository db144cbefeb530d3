// Package auth handles account registration, login and JWT verification.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository"
)

const tokenTTL = 24 * 7 * time.Hour

type UseCase struct {
	accountRepo repository.AccountRepository
	jwtSecret   string
}

func NewUseCase(accountRepo repository.AccountRepository, jwtSecret string) *UseCase {
	return &UseCase{
		accountRepo: accountRepo,
		jwtSecret:   jwtSecret,
	}
}

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,min=1,max=60"`
	LastName  string `json:"lastName" binding:"required,min=1,max=60"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      *domain.Account `json:"user"`
}

// Register creates an account and returns a fresh token for it.
func (uc *UseCase) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hash),
	}
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return uc.issueToken(account)
}

// Login checks credentials and returns a fresh token. A missing account and
// a wrong password are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	account, err := uc.accountRepo.GetByEmail(ctx, input.Email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.issueToken(account)
}

func (uc *UseCase) issueToken(account *domain.Account) (*AuthResponse, error) {
	expiresAt := time.Now().Add(tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": account.ID,
		"jti":     uuid.NewString(),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      account,
	}, nil
}

// VerifyToken checks a bearer token and returns the account ID it carries.
func (uc *UseCase) VerifyToken(ctx context.Context, tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	if _, err := uc.accountRepo.GetByID(ctx, int(userID)); err != nil {
		return 0, domain.ErrInvalidToken
	}
	return int(userID), nil
}
