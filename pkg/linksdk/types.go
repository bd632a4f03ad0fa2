package linksdk

import "time"

// Redirect is one path → URL mapping as returned by the server.
type Redirect struct {
	// Path is stored without a leading slash (e.g. "blog", "docs/go").
	Path string `json:"path"`

	// URL is the absolute redirect target.
	URL string `json:"url"`

	Created time.Time `json:"created"`
}

// CreateRequest is the body of POST /.
type CreateRequest struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /_/livez and /_/readyz (readyz includes Checks).
type HealthResponse struct {
	// Status indicates the overall health status ("ok" or "degraded")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Database is "ok" or "error: <reason>".
	Database string `json:"database"`
}
