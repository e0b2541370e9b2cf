package handler

import (
	"net/http"

	"github.com/gbmfoods/admin-api/internal/application/service"
	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login authenticates a staff member with email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", tokens)
}

// Refresh exchanges a refresh token for a new token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Token refreshed", tokens)
}

// GoogleLogin redirects the browser to Google's consent screen
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()

	url, err := h.authService.GoogleAuthURL(state)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie("oauth_state", state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the OAuth flow and issues tokens for known staff
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	storedState, err := c.Cookie("oauth_state")
	if err != nil || state == "" || state != storedState {
		response.BadRequest(c, "Invalid OAuth state")
		return
	}

	code := c.Query("code")
	if code == "" {
		response.BadRequest(c, "Missing authorization code")
		return
	}

	tokens, err := h.authService.GoogleCallback(c.Request.Context(), code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", tokens)
}
