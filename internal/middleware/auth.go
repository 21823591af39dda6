package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mokobill/MedTrack/internal/utils"
)

// Context keys
type contextKey string

const (
	usernameContextKey = contextKey("username")
	tokenContextKey    = contextKey("token")
)

// AuthMiddleware valide le token de session et injecte l'utilisateur
// dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		username, err := utils.ValidateSession(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		ctx = context.WithValue(ctx, tokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injecte l'utilisateur si un token valide est présent,
// sans jamais rejeter la requête
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token != "" {
			if username, err := utils.ValidateSession(r.Context(), token); err == nil {
				ctx := context.WithValue(r.Context(), usernameContextKey, username)
				ctx = context.WithValue(ctx, tokenContextKey, token)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUsernameFromContext récupère l'utilisateur depuis le contexte
func GetUsernameFromContext(r *http.Request) (string, error) {
	username, ok := r.Context().Value(usernameContextKey).(string)
	if !ok || username == "" {
		return "", fmt.Errorf("user not found in context")
	}
	return username, nil
}

// GetTokenFromContext récupère le token depuis le contexte
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in context")
	}
	return token, nil
}
