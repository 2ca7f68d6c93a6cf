package httpx

import (
	"context"
	"slices"
)

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject     string
	Username    string
	Role        string
	Permissions []string
}

// HasPermission reports whether the principal holds perm, either directly or
// through the "*" wildcard.
func (p Principal) HasPermission(perm string) bool {
	return slices.Contains(p.Permissions, "*") || slices.Contains(p.Permissions, perm)
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns the caller stored by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}
