package http

import (
	"net/http"

	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
	"github.com/aussiebroadwan/folio/pkg/jwtx"
)

type RegisterHandler struct {
	Registration *service.RegistrationService
}

// ServeHTTP handles POST /api/register
//
//	@Summary		Register
//	@Description	Creates a USER account and logs it in. Usernames are 3-20 letters, digits or underscores;
//	@Description	passwords are at least 8 characters.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		foliosdk.RegisterRequest	true	"New account"
//	@Success		201		{object}	foliosdk.LoginResponse		"Session for the new account"
//	@Failure		400		{object}	foliosdk.ErrorResponse		"Validation failed"
//	@Failure		409		{object}	foliosdk.ErrorResponse		"Username or email already in use"
//	@Failure		500		{object}	foliosdk.ErrorResponse		"Internal server error"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req foliosdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	res, err := h.Registration.Register(r.Context(), service.RegisterRequest{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Username:    req.Username,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, jwtx.SessionCookie(res.Token))
	httpx.WriteJSON(w, http.StatusCreated, foliosdk.LoginResponse{
		Success:   true,
		User:      sessionUser(res.User),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}
