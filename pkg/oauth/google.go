package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrInvalidCode        = errors.New("invalid authorization code")
	ErrFailedToGetUser    = errors.New("failed to get user info from Google")
	ErrOAuthNotConfigured = errors.New("Google OAuth is not configured")
)

// GoogleUserInfo represents user information from Google
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleOAuthService handles Google sign-in for staff accounts
type GoogleOAuthService struct {
	config *oauth2.Config
}

// GoogleOAuthConfig holds the configuration for Google OAuth
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// NewGoogleOAuthService creates a new Google OAuth service
func NewGoogleOAuthService(cfg GoogleOAuthConfig) *GoogleOAuthService {
	return &GoogleOAuthService{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// IsConfigured checks if Google OAuth is properly configured
func (s *GoogleOAuthService) IsConfigured() bool {
	return s.config.ClientID != "" && s.config.ClientSecret != ""
}

// GetAuthURL returns the URL to redirect the user to for Google OAuth consent
func (s *GoogleOAuthService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// GetUserInfo exchanges the authorization code and fetches the Google profile
func (s *GoogleOAuthService) GetUserInfo(ctx context.Context, code string) (*GoogleUserInfo, error) {
	if !s.IsConfigured() {
		return nil, ErrOAuthNotConfigured
	}

	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	client := s.config.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrFailedToGetUser, resp.StatusCode, string(body))
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}
	return &info, nil
}
