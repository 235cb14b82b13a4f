package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"reviewtrust/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values take sane defaults
type StackOptions struct {
	// Timeout cancels request contexts, default 30s
	Timeout time.Duration
	// SlowRequest marks access log lines as warn, 0 disables
	SlowRequest time.Duration
	// MaxInFlight caps concurrent requests, 0 disables
	MaxInFlight int
	CORS        middleware.CORSOptions
}

// CommonStack returns the baseline middleware slice for the versioned api scope
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,
		middleware.Throttle(o.MaxInFlight),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		middleware.CORS(o.CORS),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
