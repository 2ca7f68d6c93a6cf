package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
	"github.com/aussiebroadwan/folio/pkg/jwtx"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

// AuthHandler serves login, logout, password change and session checks.
type AuthHandler struct {
	Sessions *service.SessionService
}

// HandleLogin handles POST /api/auth/login
//
//	@Summary		Log in
//	@Description	Authenticates with an email or username and a password. On success the session token is
//	@Description	returned and set as the auth_token cookie. Five failed attempts from one client IP within
//	@Description	15 minutes lock further attempts until the oldest failure ages out.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.LoginRequest	true	"Credentials; email may also be a username"
//	@Success		200		{object}	foliosdk.LoginResponse	"Session token and account summary"
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Missing email/username or password"
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Invalid credentials, with attemptsRemaining"
//	@Failure		403		{object}	foliosdk.ErrorResponse	"Account suspended"
//	@Failure		429		{object}	foliosdk.ErrorResponse	"Locked out, with retryAfter"
//	@Failure		500		{object}	foliosdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	res, err := h.Sessions.Login(r.Context(), service.LoginRequest{
		Identifier: req.Email,
		Password:   req.Password,
		ClientIP:   httpx.IPKeyExtractor(r),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, jwtx.SessionCookie(res.Token))
	httpx.WriteJSON(w, http.StatusOK, foliosdk.LoginResponse{
		Success:   true,
		User:      sessionUser(res.User),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

// HandleLogout handles POST /api/auth/logout
//
//	@Summary		Log out
//	@Description	Clears the session cookie. Tokens are stateless and stay valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	foliosdk.MessageResponse
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, jwtx.ClearedSessionCookie())
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// HandleChangePassword handles POST /api/auth/change-password
//
//	@Summary		Change password
//	@Description	Replaces the caller's password after checking the current one.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		foliosdk.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Missing fields, weak password or wrong current password"
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Not authenticated"
//	@Failure		500		{object}	foliosdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := actor(r)
	if !ok {
		foliosdk.ErrNotAuthenticated.WriteError(w)
		return
	}

	var req foliosdk.ChangePasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	if err := h.Sessions.ChangePassword(r.Context(), caller.Email, req.CurrentPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{
		Success: true,
		Message: "Password changed successfully",
	})
}

// HandleVerifySession handles GET /api/auth/verify-session
//
//	@Summary		Verify session
//	@Description	Reports whether the presented token is still good. Always answers 200 unless the store is
//	@Description	unavailable; authenticated=false covers missing, invalid, expired and suspended sessions.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	foliosdk.VerifySessionResponse
//	@Failure		500	{object}	foliosdk.ErrorResponse	"Internal server error"
//	@Router			/api/auth/verify-session [get].
func (h *AuthHandler) HandleVerifySession(w http.ResponseWriter, r *http.Request) {
	token := jwtx.ExtractToken(r)
	if token == "" {
		httpx.WriteJSON(w, http.StatusOK, foliosdk.VerifySessionResponse{})
		return
	}

	sess, err := h.Sessions.VerifySession(r.Context(), token)
	switch {
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrAccountSuspended):
		slogx.FromContext(r.Context()).Debug("session not authenticated", "reason", err)
		httpx.WriteJSON(w, http.StatusOK, foliosdk.VerifySessionResponse{})
		return
	case err != nil:
		writeServiceError(w, r, err)
		return
	}

	user := sessionUser(sess.User)
	httpx.WriteJSON(w, http.StatusOK, foliosdk.VerifySessionResponse{
		Success:       true,
		Authenticated: true,
		User:          &user,
		ExpiresAt:     &sess.ExpiresAt,
	})
}
