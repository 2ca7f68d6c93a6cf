package foliosdk

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Session is an authenticated handle. Tokens are not refreshed; once
// ExpiresAt passes, log in again.
type Session struct {
	client    *SDKClient
	token     string
	expiresAt time.Time

	User SessionUser
}

func newSession(c *SDKClient, resp LoginResponse) *Session {
	return &Session{
		client:    c,
		token:     resp.Token,
		expiresAt: resp.ExpiresAt,
		User:      resp.User,
	}
}

// NewSessionFromToken wraps a token obtained elsewhere.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

func (s *Session) Token() string        { return s.token }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

func (s *Session) do(ctx context.Context, method, path string, body, out any, expected int) error {
	return s.client.do(ctx, s.token, method, path, body, out, expected)
}

// Verify asks the server whether the session is still valid.
func (s *Session) Verify(ctx context.Context) (*VerifySessionResponse, error) {
	return s.client.VerifySession(ctx, s.token)
}

// Logout clears the server cookie. The token itself stays valid until it
// expires, so the session forgets it.
func (s *Session) Logout(ctx context.Context) error {
	err := s.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, http.StatusOK)
	s.token = ""
	return err
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	return s.do(ctx, http.MethodPost, "/api/auth/change-password",
		ChangePasswordRequest{CurrentPassword: current, NewPassword: next}, nil, http.StatusOK)
}

// UpdateProfile changes the caller's own profile.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*Profile, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodPatch, "/api/users/me", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (s *Session) Follow(ctx context.Context, email string) error {
	return s.do(ctx, http.MethodPost, "/api/follows", FollowRequest{Email: email}, nil, http.StatusOK)
}

func (s *Session) Unfollow(ctx context.Context, email string) error {
	return s.do(ctx, http.MethodDelete, "/api/follows/"+url.PathEscape(email), nil, nil, http.StatusOK)
}

func (s *Session) IsFollowing(ctx context.Context, email string) (bool, error) {
	var out FollowStatusResponse
	if err := s.do(ctx, http.MethodGet, "/api/follows/"+url.PathEscape(email), nil, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.IsFollowing, nil
}

// ============================================================================
// Owner-only operations
// ============================================================================

func (s *Session) AdminListUsers(ctx context.Context, limit int) ([]Profile, error) {
	var out ProfileListResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/users"+limitQuery(limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (s *Session) AdminDeleteUser(ctx context.Context, email string) error {
	return s.do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(email), nil, nil, http.StatusOK)
}

// AdminSetActive suspends (false) or reinstates (true) an account.
func (s *Session) AdminSetActive(ctx context.Context, email string, active bool) error {
	return s.do(ctx, http.MethodPost, "/api/admin/users/"+url.PathEscape(email)+"/active",
		SetActiveRequest{Active: active}, nil, http.StatusOK)
}

func (s *Session) AdminResetPassword(ctx context.Context, email, password string) error {
	return s.do(ctx, http.MethodPost, "/api/admin/users/"+url.PathEscape(email)+"/reset-password",
		ResetPasswordRequest{NewPassword: password}, nil, http.StatusOK)
}

func (s *Session) AdminAnalytics(ctx context.Context) (*Analytics, error) {
	var out AnalyticsResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/analytics", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Analytics, nil
}

func (s *Session) AdminListFollows(ctx context.Context, limit int) ([]FollowEdge, error) {
	var out FollowListResponse
	if err := s.do(ctx, http.MethodGet, "/api/admin/follows"+limitQuery(limit), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Follows, nil
}

func (s *Session) AdminDeleteFollow(ctx context.Context, follower, following string) error {
	return s.do(ctx, http.MethodDelete,
		"/api/admin/follows/"+url.PathEscape(follower)+"/"+url.PathEscape(following), nil, nil, http.StatusOK)
}
