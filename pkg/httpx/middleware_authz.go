package httpx

import (
	"net/http"
	"slices"
)

// RequireRole lets the request through when the principal has one of roles.
// It must run after AuthnMiddleware.
func RequireRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			if !slices.Contains(roles, p.Role) {
				WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission lets the request through when the principal holds every
// listed permission.
func RequirePermission(perms ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			for _, perm := range perms {
				if !p.HasPermission(perm) {
					WriteError(w, http.StatusForbidden, "Forbidden")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
