package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	hash, err := HashPassword("sunshine-123")
	require.NoError(t, err)
	return NewManager(ManagerConfig{
		AdminEmail:   "admin@lightsup.ng",
		PasswordHash: hash,
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
	})
}

func TestLogin(t *testing.T) {
	m := newTestManager(t)

	t.Run("Valid Credentials", func(t *testing.T) {
		token, err := m.Login("admin@lightsup.ng", "sunshine-123")
		require.NoError(t, err)
		subject, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@lightsup.ng", subject)
	})

	t.Run("Email Is Case Insensitive", func(t *testing.T) {
		_, err := m.Login("Admin@Lightsup.NG", "sunshine-123")
		assert.NoError(t, err)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := m.Login("admin@lightsup.ng", "guess")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong Email", func(t *testing.T) {
		_, err := m.Login("intruder@example.com", "sunshine-123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unconfigured Manager", func(t *testing.T) {
		empty := NewManager(ManagerConfig{})
		_, err := empty.Login("admin@lightsup.ng", "sunshine-123")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	m := newTestManager(t)
	other := NewManager(ManagerConfig{
		AdminEmail:   "admin@lightsup.ng",
		PasswordHash: m.passwordHash,
		JWTSecret:    "different-secret",
	})

	token, err := other.Login("admin@lightsup.ng", "sunshine-123")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredTokens(t *testing.T) {
	hash, err := HashPassword("sunshine-123")
	require.NoError(t, err)
	m := NewManager(ManagerConfig{
		AdminEmail:   "admin@lightsup.ng",
		PasswordHash: hash,
		JWTSecret:    "test-secret",
		TokenTTL:     -time.Minute,
	})

	token, err := m.Login("admin@lightsup.ng", "sunshine-123")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestManager(t)

	router := gin.New()
	router.GET("/guarded", m.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString("admin")})
	})

	t.Run("No Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := m.Login("admin@lightsup.ng", "sunshine-123")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "admin@lightsup.ng")
	})
}
