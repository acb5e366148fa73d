package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/budgify/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAccessToken(t *testing.T) {
	accessToken := utils.NewAccessTokenUtil("test-secret", time.Hour)

	var seenUserId string
	protected := VerifyAccessToken(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserId = r.Header.Get("UserId")
		w.WriteHeader(http.StatusOK)
	}), accessToken)

	t.Run("valid bearer token passes and exposes the user id", func(t *testing.T) {
		token, err := accessToken.EncodeToken(42, "jane@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "42", seenUserId)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is 401", func(t *testing.T) {
		expired := utils.NewAccessTokenUtil("test-secret", -time.Hour)
		token, err := expired.EncodeToken(42, "jane@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
		req.Header.Set("Authorization", "Bearer nonsense")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
