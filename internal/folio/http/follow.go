package http

import (
	"net/http"

	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
)

type FollowHandler struct {
	Follows *service.FollowService
}

// HandleFollow handles POST /api/follows
//
//	@Summary		Follow a user
//	@Tags			Follows
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		foliosdk.FollowRequest	true	"Account to follow"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Missing email or self-follow"
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Not authenticated"
//	@Failure		404		{object}	foliosdk.ErrorResponse	"User not found"
//	@Failure		409		{object}	foliosdk.ErrorResponse	"Already following"
//	@Router			/api/follows [post].
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	caller, ok := actor(r)
	if !ok {
		foliosdk.ErrNotAuthenticated.WriteError(w)
		return
	}

	var req foliosdk.FollowRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	if err := h.Follows.Follow(r.Context(), caller.Email, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Success: true, Message: "Successfully followed user"})
}

// HandleUnfollow handles DELETE /api/follows/{email}
//
//	@Summary		Unfollow a user
//	@Tags			Follows
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	path		string	true	"Account to unfollow"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Not authenticated"
//	@Failure		404		{object}	foliosdk.ErrorResponse	"Not following this user"
//	@Router			/api/follows/{email} [delete].
func (h *FollowHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	caller, ok := actor(r)
	if !ok {
		foliosdk.ErrNotAuthenticated.WriteError(w)
		return
	}

	if err := h.Follows.Unfollow(r.Context(), caller.Email, r.PathValue("email")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Success: true, Message: "Successfully unfollowed user"})
}

// HandleStatus handles GET /api/follows/{email}
//
//	@Summary		Check follow status
//	@Tags			Follows
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	path		string	true	"Account to check"
//	@Success		200		{object}	foliosdk.FollowStatusResponse
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Not authenticated"
//	@Router			/api/follows/{email} [get].
func (h *FollowHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := actor(r)
	if !ok {
		foliosdk.ErrNotAuthenticated.WriteError(w)
		return
	}

	following, err := h.Follows.IsFollowing(r.Context(), caller.Email, r.PathValue("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.FollowStatusResponse{Success: true, IsFollowing: following})
}
