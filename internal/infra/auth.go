package infra

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/courseforum/conversation-service/internal/config"
)

// AuthInterceptorHTTP expects the gateway to have authenticated the request
// and forwarded the user identity in the X-User-Uuid header.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get("X-User-Uuid")
		if userUUID == "" {
			http.Error(w, "user uuid is required", http.StatusUnauthorized)
			return
		}

		if _, err := uuid.Parse(userUUID); err != nil {
			http.Error(w, "invalid user uuid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
