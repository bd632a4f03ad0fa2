package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/links/pkg/slogx"
)

// Authenticator checks HTTP Basic credentials. ok is false for bad
// credentials; err is reserved for backend failures.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (userID string, ok bool, err error)
}

// BasicAuth requires valid HTTP Basic credentials and stores the resulting
// user id in the request context. Missing, malformed and rejected
// credentials all get the same 401 response.
func BasicAuth(a Authenticator, realm string) Middleware {
	challenge := `Basic realm="` + realm + `", charset="UTF-8"`

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			username, password, ok := r.BasicAuth()
			if !ok {
				writeBasicError(w, challenge)
				return
			}

			userID, ok, err := a.Authenticate(ctx, username, password)
			if err != nil {
				log.Error("basic auth backend failure", "error", err)
				WriteError(w, http.StatusInternalServerError, "server_error", "Internal server error")
				return
			}
			if !ok {
				log.Warn("basic auth rejected")
				writeBasicError(w, challenge)
				return
			}

			ctx = contextWithUser(ctx, userID)
			ctx = slogx.WithUser(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 7617 challenge.
func writeBasicError(w http.ResponseWriter, challenge string) {
	w.Header().Set("WWW-Authenticate", challenge)
	WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
}
