package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiry time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(42),
		"exp":     time.Now().Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedHandler(t *testing.T, wantUserID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, userID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession(t *testing.T) {
	t.Run("valid bearer token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Hour))
		rec := httptest.NewRecorder()

		RequireSession(testSecret)(protectedHandler(t, 42)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("valid session cookie passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signToken(t, testSecret, time.Hour)})
		rec := httptest.NewRecorder()

		RequireSession(testSecret)(protectedHandler(t, 42)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("browser without session is redirected with return path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile?tab=posts", nil)
		req.Header.Set("Accept", "text/html,application/xhtml+xml")
		rec := httptest.NewRecorder()

		RequireSession(testSecret)(protectedHandler(t, 0)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/auth/signin?next=%2Fprofile%3Ftab%3Dposts", rec.Header().Get("Location"))
	})

	t.Run("api client without session gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()

		RequireSession(testSecret)(protectedHandler(t, 0)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, -time.Hour))
		rec := httptest.NewRecorder()

		RequireSession(testSecret)(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", time.Hour))
		rec := httptest.NewRecorder()

		RequireSession(testSecret)(protectedHandler(t, 0)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalSession(t *testing.T) {
	t.Run("no session still passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		rec := httptest.NewRecorder()

		var sawUser bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawUser = GetUserIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		OptionalSession(testSecret)(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, sawUser)
	})

	t.Run("valid session attaches the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Hour))
		rec := httptest.NewRecorder()

		OptionalSession(testSecret)(protectedHandler(t, 42)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
