package service

import (
	"context"

	"github.com/gbmfoods/admin-api/internal/domain/repository"
	"github.com/gbmfoods/admin-api/pkg/apperror"
	"github.com/gbmfoods/admin-api/pkg/logger"
	"github.com/gbmfoods/admin-api/pkg/oauth"
	"github.com/gbmfoods/admin-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is the access/refresh token pair issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Name         string `json:"name"`
	Email        string `json:"email"`
}

// AuthService authenticates staff accounts against the admins collection.
type AuthService struct {
	adminRepo  repository.AdminRepository
	jwtManager *utils.JWTManager
	google     *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	adminRepo repository.AdminRepository,
	jwtManager *utils.JWTManager,
	google *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtManager: jwtManager,
		google:     google,
	}
}

// Login verifies a staff email/password pair and issues tokens.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrInvalidCredentials
		}
		logger.L().Error("admin lookup failed", zap.String("email", email), zap.Error(err))
		return nil, apperror.ErrInternalServer
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(admin.Email, admin.Name)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	email, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrInvalidToken
		}
		logger.L().Error("admin lookup failed", zap.String("email", email), zap.Error(err))
		return nil, apperror.ErrInternalServer
	}

	return s.issueTokens(admin.Email, admin.Name)
}

// GoogleAuthURL returns the Google consent URL for the given state.
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.google.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.google.GetAuthURL(state), nil
}

// GoogleCallback completes the Google sign-in flow. Only Google accounts
// present in the admins collection may sign in.
func (s *AuthService) GoogleCallback(ctx context.Context, code string) (*TokenPair, error) {
	info, err := s.google.GetUserInfo(ctx, code)
	if err != nil {
		logger.L().Warn("google sign-in failed", zap.Error(err))
		return nil, apperror.ErrUnauthorized
	}

	admin, err := s.adminRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.ErrForbidden
		}
		logger.L().Error("admin lookup failed", zap.String("email", info.Email), zap.Error(err))
		return nil, apperror.ErrInternalServer
	}

	return s.issueTokens(admin.Email, admin.Name)
}

func (s *AuthService) issueTokens(email, name string) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(email, name)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(email)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		Name:         name,
		Email:        email,
	}, nil
}
