package httpkit

import (
	"compress/flate"
	"net/http"

	"orggate/internal/modkit/scope"
	pnet "orggate/internal/platform/net"
	phttp "orggate/internal/platform/net/http"
	"orggate/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with your auth or tenancy middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.Logger(),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * 1e9), // 30s
	}
}

// Auth wires the auth middleware to the platform JSON writer
// On success the caller identity is also stamped into scope so outbound
// calls can attribute the request to a user
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	// middleware expects write func(w http.ResponseWriter, status int, body any)
	// use phttp.JSON which matches that signature
	base := middleware.Auth(p, phttp.JSON)
	return func(next http.Handler) http.Handler {
		stamp := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if uid := pnet.UserID(r.Context()); uid != "" {
				r = r.WithContext(scope.With(r.Context(), map[string]string{"user_id": uid}))
			}
			next.ServeHTTP(w, r)
		})
		return base(stamp)
	}
}
