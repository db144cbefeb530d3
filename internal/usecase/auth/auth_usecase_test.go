package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturelink/venturelink-backend/internal/domain"
	"github.com/venturelink/venturelink-backend/internal/repository/memory"
	"github.com/venturelink/venturelink-backend/internal/usecase/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newUseCase() (*auth.UseCase, *memory.AccountRepository) {
	repo := memory.NewAccountRepository()
	return auth.NewUseCase(repo, testSecret), repo
}

func register(t *testing.T, uc *auth.UseCase) *auth.AuthResponse {
	t.Helper()
	resp, err := uc.Register(context.Background(), &auth.RegisterInput{
		Email:     "dana@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Dana",
		LastName:  "B",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister_IssuesUsableToken(t *testing.T) {
	uc, _ := newUseCase()
	resp := register(t, uc)

	require.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.NotEqual(t, "hunter2hunter2", resp.User.PasswordHash)

	userID, err := uc.VerifyToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newUseCase()
	register(t, uc)

	_, err := uc.Register(context.Background(), &auth.RegisterInput{
		Email:     "dana@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Dana",
		LastName:  "B",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin_ChecksPassword(t *testing.T) {
	uc, _ := newUseCase()
	register(t, uc)

	resp, err := uc.Login(context.Background(), &auth.LoginInput{
		Email:    "dana@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.Login(context.Background(), &auth.LoginInput{
		Email:    "dana@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Missing account reads identically to a wrong password.
	_, err = uc.Login(context.Background(), &auth.LoginInput{
		Email:    "none@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyToken_RejectsGarbageAndWrongKey(t *testing.T) {
	uc, repo := newUseCase()
	resp := register(t, uc)

	_, err := uc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	other := auth.NewUseCase(repo, "another-secret-another-secret-xx")
	_, err = other.VerifyToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
