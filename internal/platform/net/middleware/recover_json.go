package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "reviewtrust/internal/platform/errors"
	"reviewtrust/internal/platform/logger"
	pnet "reviewtrust/internal/platform/net"
)

// RecoverJSON converts panics into the JSON 500 envelope and logs the stack
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(logger.WithRequest(r.Context(), reqID)).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			_, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
			// panics are internal whatever the code maps to
			body.StatusCode = stdhttp.StatusInternalServerError
			body.Status = stdhttp.StatusText(stdhttp.StatusInternalServerError)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(stdhttp.StatusInternalServerError)
			_ = jsonEncode(w, body)
		}()
		next.ServeHTTP(w, r)
	})
}
