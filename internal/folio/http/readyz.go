package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/folio/internal/folio/store"
	"github.com/aussiebroadwan/folio/pkg/foliosdk"
	"github.com/aussiebroadwan/folio/pkg/httpx"
	"github.com/aussiebroadwan/folio/pkg/lockout"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, the database and the login lockout table
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	foliosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	foliosdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	limiter *lockout.Limiter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &foliosdk.HealthChecks{
			Database: "ok",
			Lockout:  "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// A full table still works (oldest keys are evicted) but means
		// someone is spraying logins from many addresses
		if cfg := limiter.Config(); limiter.Len() >= cfg.MaxEntries {
			checks.Lockout = fmt.Sprintf("saturated: %d entries", limiter.Len())
		}

		httpx.WriteJSON(w, statusCode, foliosdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
