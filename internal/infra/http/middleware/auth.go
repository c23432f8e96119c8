package middleware

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/api/idtoken"
)

type contextKey string

// UserKey: identidade autenticada do request (subject do token ou "api-key-user").
const UserKey contextKey = "user"

// tokenValidator existe para os testes não dependerem do endpoint do Google.
var tokenValidator = func(ctx context.Context, token, audience string) (string, error) {
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return "", err
	}
	return payload.Subject, nil
}

// Auth aceita X-API-Key (CLI e automações) ou um ID token do Google no
// header Authorization. Sem credencial válida, 401.
func Auth(apiKey, googleClientID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key := r.Header.Get("X-API-Key"); key != "" {
				if apiKey != "" && key == apiKey {
					ctx := context.WithValue(r.Context(), UserKey, "api-key-user")
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return
			}

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authz, "Bearer ")
			subject, err := tokenValidator(r.Context(), token, googleClientID)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
