package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gbmfoods/admin-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(jwtManager *utils.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AuthMiddleware(jwtManager))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetStaffEmail(c)})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	router := newAuthRouter(jwtManager)

	token, err := jwtManager.GenerateAccessToken("jane@gbmfoods.com", "Jane")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane@gbmfoods.com")
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	router := newAuthRouter(jwtManager)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RejectsExpiredToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", -time.Minute, 24*time.Hour)
	router := newAuthRouter(jwtManager)

	token, err := jwtManager.GenerateAccessToken("jane@gbmfoods.com", "Jane")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
