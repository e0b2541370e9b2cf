package service

import (
	"context"
	"testing"
	"time"

	"github.com/gbmfoods/admin-api/internal/domain/entity"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/oauth"
	"github.com/gbmfoods/admin-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]*entity.Admin
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	if admin, ok := f.admins[email]; ok {
		return admin, nil
	}
	return nil, apperror.NewNotFoundError("Admin")
}

func newAuthFixture(t *testing.T) (*AuthService, *utils.JWTManager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]*entity.Admin{
		"jane@gbmfoods.com": {
			ID:           "admin-1",
			Name:         "Jane",
			Email:        "jane@gbmfoods.com",
			PasswordHash: string(hash),
		},
	}}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	google := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{})

	return NewAuthService(repo, jwtManager, google), jwtManager
}

func TestLogin(t *testing.T) {
	svc, jwtManager := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), "jane@gbmfoods.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, "Jane", tokens.Name)
	assert.Equal(t, "jane@gbmfoods.com", tokens.Email)

	claims, err := jwtManager.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "jane@gbmfoods.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), "jane@gbmfoods.com", "wrong")

	assert.Nil(t, tokens)
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), "nobody@gbmfoods.com", "correct-horse")

	assert.Nil(t, tokens)
	// Unknown accounts and wrong passwords are indistinguishable to the caller.
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}

func TestRefresh(t *testing.T) {
	svc, _ := newAuthFixture(t)

	tokens, err := svc.Login(context.Background(), "jane@gbmfoods.com", "correct-horse")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), tokens.RefreshToken)

	require.NoError(t, err)
	assert.Equal(t, "jane@gbmfoods.com", refreshed.Email)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	refreshed, err := svc.Refresh(context.Background(), "garbage")

	assert.Nil(t, refreshed)
	assert.Equal(t, apperror.ErrInvalidToken, err)
}

func TestGoogleAuthURL_NotConfigured(t *testing.T) {
	svc, _ := newAuthFixture(t)

	url, err := svc.GoogleAuthURL("state-123")

	assert.Empty(t, url)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}
