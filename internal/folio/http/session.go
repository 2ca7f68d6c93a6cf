package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
)

// sessionAuthenticator resolves tokens through SessionService, so every
// request sees the current role and active flag rather than the token's.
type sessionAuthenticator struct {
	sessions *service.SessionService
}

func (a sessionAuthenticator) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	sess, err := a.sessions.VerifySession(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{
		Subject:     sess.User.Email,
		Username:    sess.User.Username,
		Role:        sess.User.Role,
		Permissions: sess.User.Permissions,
	}, nil
}

// actor rebuilds the caller from the request principal. The principal was
// loaded from the store on this request and only active accounts get one.
func actor(r *http.Request) (domain.User, bool) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		return domain.User{}, false
	}
	return domain.User{
		Email:       p.Subject,
		Username:    p.Username,
		Role:        p.Role,
		Permissions: p.Permissions,
		Active:      true,
	}, true
}

func sessionUser(u domain.User) foliosdk.SessionUser {
	return foliosdk.SessionUser{
		Email:             u.Email,
		Username:          u.Username,
		Role:              u.Role,
		LastLogin:         u.LastLoginAt,
		PasswordChangedAt: u.PasswordChangedAt,
	}
}

func toProfile(p domain.Profile) foliosdk.Profile {
	return foliosdk.Profile{
		Email:       p.Email,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		PhotoURL:    p.PhotoURL,
		Role:        p.Role,
		Active:      p.Active,
		Followers:   p.Followers,
		Following:   p.Following,
		CreatedAt:   p.CreatedAt,
		LastLogin:   p.LastLoginAt,
	}
}

func toProfiles(ps []domain.Profile) []foliosdk.Profile {
	out := make([]foliosdk.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProfile(p))
	}
	return out
}
