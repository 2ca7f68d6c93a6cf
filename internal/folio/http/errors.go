package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/folio/internal/folio/service"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
	"github.com/aussiebroadwan/folio/pkg/slogx"
)

// writeServiceError maps a service error onto a status code and a client-safe
// message. Anything unrecognised is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve  *service.ValidationError
		ice *service.InvalidCredentialsError
		tma *service.TooManyAttemptsError
	)

	switch {
	case errors.As(err, &ve):
		foliosdk.NewAPIError(http.StatusBadRequest, ve.Message).WriteError(w)

	case errors.As(err, &ice):
		remaining := ice.AttemptsRemaining
		(&foliosdk.APIError{
			StatusCode:        http.StatusUnauthorized,
			Message:           "Invalid email/username or password",
			AttemptsRemaining: &remaining,
		}).WriteError(w)

	case errors.As(err, &tma):
		retry := tma.RetryAfter
		(&foliosdk.APIError{
			StatusCode: http.StatusTooManyRequests,
			Message:    fmt.Sprintf("Too many login attempts. Please try again in %d seconds.", retry),
			RetryAfter: &retry,
		}).WriteError(w)

	case errors.Is(err, service.ErrCurrentPasswordIncorrect):
		foliosdk.NewAPIError(http.StatusBadRequest, "Current password is incorrect").WriteError(w)
	case errors.Is(err, service.ErrSelfAction):
		foliosdk.NewAPIError(http.StatusBadRequest, "Cannot perform this action on your own account").WriteError(w)

	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, httpx.ErrMissingToken):
		foliosdk.ErrNotAuthenticated.WriteError(w)

	case errors.Is(err, service.ErrForbidden):
		foliosdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrAccountSuspended):
		foliosdk.NewAPIError(http.StatusForbidden, "Account has been suspended").WriteError(w)

	case errors.Is(err, service.ErrUserNotFound):
		foliosdk.NewAPIError(http.StatusNotFound, "User not found").WriteError(w)
	case errors.Is(err, service.ErrNotFollowing):
		foliosdk.NewAPIError(http.StatusNotFound, "Not following this user").WriteError(w)

	case errors.Is(err, service.ErrUsernameTaken):
		foliosdk.NewAPIError(http.StatusConflict, "Username already taken").WriteError(w)
	case errors.Is(err, service.ErrEmailTaken):
		foliosdk.NewAPIError(http.StatusConflict, "Email already registered").WriteError(w)
	case errors.Is(err, service.ErrAlreadyFollowing):
		foliosdk.NewAPIError(http.StatusConflict, "Already following this user").WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("request failed",
			"path", r.URL.Path,
			"err", err,
		)
		foliosdk.ErrServerError.WriteError(w)
	}
}

// authError is the httpx.ErrorHandler for the session middleware.
func authError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, httpx.ErrMissingToken):
		foliosdk.ErrNotAuthenticated.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated):
		foliosdk.ErrInvalidSession.WriteError(w)
	default:
		writeServiceError(w, r, err)
	}
}
