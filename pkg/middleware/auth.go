package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/insights-dashboard/pkg/apiErrors"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// TokenValidator valida um bearer token e devolve o id do usuário dono dele
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int, error)
}

// BearerAuth exige um token válido no cabeçalho Authorization. O id do usuário
// fica disponível no contexto via UserID.
func BearerAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, http.StatusUnauthorized, apiErrors.DetailNotAuthenticated)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				apiErrors.WriteError(w, http.StatusUnauthorized, apiErrors.DetailNotAuthenticated)
				return
			}

			userID, err := validator.ValidateToken(r.Context(), tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("auth: token rejeitado")
				apiErrors.WriteError(w, http.StatusUnauthorized, apiErrors.DetailInvalidCredentials)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID devolve o usuário autenticado pelo BearerAuth
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ContextKeyUser).(int)
	return id, ok
}
