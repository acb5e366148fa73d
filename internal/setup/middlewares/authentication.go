package middlewares

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/budgify/backend/internal/utils"
)

// VerifyAccessToken resolves the Bearer credential to a user id and stores
// it on the request headers for the controllers downstream.
func VerifyAccessToken(next http.Handler, accessToken *utils.AccessTokenUtil) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := accessToken.DecodeToken(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", strconv.FormatInt(claims.UserId, 10))

		next.ServeHTTP(w, r)
	})
}
