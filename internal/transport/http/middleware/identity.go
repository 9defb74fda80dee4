package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vedran77/quill/internal/auth"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity resolves the request's identity from an optional bearer token.
//
// No Authorization header, or one without the Bearer scheme, is not an
// error: the request continues anonymously. A bearer token that fails
// verification rejects the request outright. A valid token whose account no
// longer exists also continues anonymously; downstream ownership checks
// reject as needed.
func Identity(codec *auth.TokenCodec, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			userID, err := codec.Verify(tokenStr)
			if err != nil {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Invalid token"}}`, http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				http.Error(w, `{"error":{"code":"INTERNAL","message":"Something went wrong"}}`, http.StatusInternalServerError)
				return
			}

			if user != nil {
				ctx := context.WithValue(r.Context(), identityKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the resolved identity, or nil for anonymous.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(identityKey).(*domain.User)
	return user
}
