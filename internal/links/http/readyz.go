package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/links/internal/links/store"
	"github.com/aussiebroadwan/links/pkg/httpx"
	"github.com/aussiebroadwan/links/pkg/linksdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that pings the database.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	linksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	linksdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/_/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &linksdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := linksdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
