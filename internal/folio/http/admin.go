package http

import (
	"net/http"

	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
)

// AdminHandler serves the OWNER-only endpoints. The router already requires
// the OWNER role; AdminService checks it again against the same fresh record.
type AdminHandler struct {
	Admin *service.AdminService
}

// HandleListUsers handles GET /api/admin/users
//
//	@Summary		List all users
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int	false	"Maximum results (default and max 1000)"
//	@Success		200		{object}	foliosdk.ProfileListResponse
//	@Failure		401		{object}	foliosdk.ErrorResponse	"Not authenticated"
//	@Failure		403		{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Router			/api/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)
	profiles, err := h.Admin.ListUsers(r.Context(), caller, queryLimit(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeProfiles(w, profiles)
}

// HandleDeleteUser handles DELETE /api/admin/users/{email}
//
//	@Summary		Delete a user
//	@Description	Removes the account and its follow edges, adjusting the counters of the other side.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	path		string	true	"Account to delete"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Cannot delete your own account"
//	@Failure		403		{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Failure		404		{object}	foliosdk.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{email} [delete].
func (h *AdminHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)
	if err := h.Admin.DeleteUser(r.Context(), caller, r.PathValue("email")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Success: true, Message: "User deleted successfully"})
}

// HandleSetActive handles POST /api/admin/users/{email}/active
//
//	@Summary		Suspend or reinstate a user
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	path		string						true	"Account to change"
//	@Param			request	body		foliosdk.SetActiveRequest	true	"New active flag"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Cannot change your own account"
//	@Failure		403		{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Failure		404		{object}	foliosdk.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{email}/active [post].
func (h *AdminHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)

	var req foliosdk.SetActiveRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	if err := h.Admin.SetActive(r.Context(), caller, r.PathValue("email"), req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}

	msg := "User suspended"
	if req.Active {
		msg = "User reinstated"
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Success: true, Message: msg})
}

// HandleResetPassword handles POST /api/admin/users/{email}/reset-password
//
//	@Summary		Reset a user's password
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	path		string							true	"Account to reset"
//	@Param			request	body		foliosdk.ResetPasswordRequest	true	"New password"
//	@Success		200		{object}	foliosdk.MessageResponse
//	@Failure		400		{object}	foliosdk.ErrorResponse	"Weak password"
//	@Failure		403		{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Failure		404		{object}	foliosdk.ErrorResponse	"User not found"
//	@Router			/api/admin/users/{email}/reset-password [post].
func (h *AdminHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)

	var req foliosdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		foliosdk.ErrBadRequest.WriteError(w)
		return
	}

	if err := h.Admin.ResetPassword(r.Context(), caller, r.PathValue("email"), req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Success: true, Message: "Password reset successfully"})
}

// HandleAnalytics handles GET /api/admin/analytics
//
//	@Summary		User base summary
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	foliosdk.AnalyticsResponse
//	@Failure		403	{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Router			/api/admin/analytics [get].
func (h *AdminHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)
	a, err := h.Admin.Analytics(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.AnalyticsResponse{
		Success: true,
		Analytics: foliosdk.Analytics{
			TotalUsers:     a.TotalUsers,
			ActiveUsers:    a.ActiveUsers,
			SuspendedUsers: a.SuspendedUsers,
			Owners:         a.Owners,
			NewUsers:       a.NewUsers,
			TotalFollows:   a.TotalFollows,
		},
	})
}

// HandleListFollows handles GET /api/admin/follows
//
//	@Summary		List all follow edges
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			limit	query		int	false	"Maximum results (default and max 1000)"
//	@Success		200		{object}	foliosdk.FollowListResponse
//	@Failure		403		{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Router			/api/admin/follows [get].
func (h *AdminHandler) HandleListFollows(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)
	edges, err := h.Admin.ListFollows(r.Context(), caller, queryLimit(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]foliosdk.FollowEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, foliosdk.FollowEdge{
			Follower:  e.FollowerEmail,
			Following: e.FollowingEmail,
			CreatedAt: e.CreatedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.FollowListResponse{Success: true, Follows: out, Count: len(out)})
}

// HandleDeleteFollow handles DELETE /api/admin/follows/{follower}/{following}
//
//	@Summary		Delete a follow edge
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			follower	path		string	true	"Follower email"
//	@Param			following	path		string	true	"Followed email"
//	@Success		200			{object}	foliosdk.MessageResponse
//	@Failure		403			{object}	foliosdk.ErrorResponse	"Caller is not an owner"
//	@Failure		404			{object}	foliosdk.ErrorResponse	"No such edge"
//	@Router			/api/admin/follows/{follower}/{following} [delete].
func (h *AdminHandler) HandleDeleteFollow(w http.ResponseWriter, r *http.Request) {
	caller, _ := actor(r)
	err := h.Admin.DeleteFollow(r.Context(), caller, r.PathValue("follower"), r.PathValue("following"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foliosdk.MessageResponse{Success: true, Message: "Follow removed"})
}
