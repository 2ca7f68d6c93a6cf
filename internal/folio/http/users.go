package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/folio/internal/folio/domain"
	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
)

// UsersHandler serves public profiles and the caller's own profile.
type UsersHandler struct {
	Profiles *service.ProfileService
	Follows  *service.FollowService
}

// HandleList handles GET /api/users
//
//	@Summary		List profiles
//	@Tags			Users
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum results (default 100, max 1000)"
//	@Success		200		{object}	foliosdk.ProfileListResponse
//	@Failure		500		{object}	foliosdk.ErrorResponse	"Internal server error"
//	@Router			/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Profiles.List(r.Context(), queryLimit(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeProfiles(w, profiles)
}

// HandleGet handles GET /api/users/{identifier}
//
//	@Summary		Get a profile
//	@Tags			Users
//	@Produce		json
//	@Param			identifier	path		string	true	"Email or username"
//	@Success		200			{object}	foliosdk.ProfileResponse
//	@Failure		404			{object}	foliosdk.ErrorResponse	"User not found"
//	@Router			/api/users/{identifier} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.Get(r.Context(), r.PathValue("identifier"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.ProfileResponse{Success: true, User: toProfile(profile)})
}

// HandleUpdateMe handles PATCH /api/users/me
//
//	@Summary		Update own profile
//	@Description	Only the fields present in the body change.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		foliosdk.ProfileUpdateRequest	true	"Fields to change"
//	@Success		200		{object}	foliosdk.ProfileResponse
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Validation failed"
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Not authenticated"
//	@Router			/api/users/me [patch].
func (h *UsersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := actor(r)
	if !ok {
		foliosdk.ErrNotAuthenticated.WriteError(w)
		return
	}

	var req foliosdk.ProfileUpdateRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	profile, err := h.Profiles.Update(r.Context(), caller.Email, domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.ProfileResponse{Success: true, User: toProfile(profile)})
}

// HandleFollowers handles GET /api/users/{email}/followers
//
//	@Summary		List followers
//	@Tags			Follows
//	@Produce		json
//	@Param			email	path		string	true	"Account email"
//	@Param			limit	query		int		false	"Maximum results (default 100, max 1000)"
//	@Success		200		{object}	foliosdk.ProfileListResponse
//	@Failure		404		{object}	foliosdk.ErrorResponse	"User not found"
//	@Router			/api/users/{email}/followers [get].
func (h *UsersHandler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Follows.Followers(r.Context(), r.PathValue("email"), queryLimit(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeProfiles(w, profiles)
}

// HandleFollowing handles GET /api/users/{email}/following
//
//	@Summary		List followed accounts
//	@Tags			Follows
//	@Produce		json
//	@Param			email	path		string	true	"Account email"
//	@Param			limit	query		int		false	"Maximum results (default 100, max 1000)"
//	@Success		200		{object}	foliosdk.ProfileListResponse
//	@Failure		404		{object}	foliosdk.ErrorResponse	"User not found"
//	@Router			/api/users/{email}/following [get].
func (h *UsersHandler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Follows.Following(r.Context(), r.PathValue("email"), queryLimit(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeProfiles(w, profiles)
}

func writeProfiles(w http.ResponseWriter, profiles []domain.Profile) {
	httpx.WriteJSON(w, http.StatusOK, foliosdk.ProfileListResponse{
		Success: true,
		Users:   toProfiles(profiles),
		Count:   len(profiles),
	})
}

// queryLimit parses ?limit=; anything unparsable means "use the default".
func queryLimit(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return n
}
