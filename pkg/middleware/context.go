package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/pdv-reports-api/internal/domain"
)

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

// ClaimsFromContext obtém as claims do operador autenticado
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
