package release

import (
	"net/http"

	"proclubs-notify/internal/handler/http/respond"
)

// Register mounts the webhook endpoint on the mux behind the given
// authentication middleware. Only POST is served; any other method on the
// path gets the same structured 404 as an unmatched route, so probing the
// path with GET reveals nothing and never touches authentication.
func Register(mux *http.ServeMux, h Handler, authn func(http.Handler) http.Handler) {
	endpoint := authn(h)
	mux.Handle("/svincolato", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respond.Error(w, http.StatusNotFound, "Route not found")
			return
		}
		endpoint.ServeHTTP(w, r)
	}))
}
