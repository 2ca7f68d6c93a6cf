package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/folio/pkg/jwtx"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

var ErrMissingToken = errors.New("missing session token")

// Authenticator resolves a raw session token to the caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

// ErrorHandler writes the response for a request rejected by a middleware.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware requires a session token in the Authorization header or the
// session cookie and stores the resolved Principal in the request context.
// A nil onErr answers every failure with a plain 401.
func AuthnMiddleware(a Authenticator, onErr ErrorHandler) Middleware {
	if onErr == nil {
		onErr = func(w http.ResponseWriter, _ *http.Request, _ error) {
			WriteError(w, http.StatusUnauthorized, "Not authenticated")
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := jwtx.ExtractToken(r)
			if token == "" {
				onErr(w, r, ErrMissingToken)
				return
			}

			p, err := a.Authenticate(ctx, token)
			if err != nil {
				slogx.FromContext(ctx).Debug("session rejected", "err", err)
				onErr(w, r, err)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.With(ctx, "user", p.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
