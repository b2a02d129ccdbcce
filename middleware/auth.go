package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/softjack/futebol-api/services"
)

type contextKey string

const (
	claimsContextKey      contextKey = "claims"
	organizadorContextKey contextKey = "organizador_id"
)

// Authenticate valida o bearer token e coloca as claims no contexto.
func Authenticate(tokenService services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}

			claims, err := tokenService.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrganizadorScope resolve o organizador ativo do usuário autenticado e o
// coloca no contexto. Todas as rotas com escopo de organizador passam por
// aqui, em vez de cada handler repetir a consulta.
func OrganizadorScope(organizadorService services.OrganizadorService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := GetUserIDFromContext(r.Context())
			if err != nil {
				unauthorized(w)
				return
			}

			organizadorID, err := organizadorService.ResolveOwner(r.Context(), userID)
			if err != nil {
				// Ausente ou inativo: escopo não resolvido é 401, não 404.
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), organizadorContextKey, organizadorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, ok := ctx.Value(claimsContextKey).(*services.TokenClaims)
	if !ok {
		return uuid.Nil, errors.New("token claims not found in context")
	}
	return claims.UserID, nil
}

func GetOrganizadorIDFromContext(ctx context.Context) (int, error) {
	organizadorID, ok := ctx.Value(organizadorContextKey).(int)
	if !ok {
		return 0, errors.New("organizador scope not found in context")
	}
	return organizadorID, nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"message":"não autorizado","code":"unauthorized"}}`))
}
