package httpkit

import (
	"net/http"

	str "reviewtrust/internal/platform/strings"
)

// MountUnder opens a subrouter at prefix, applies the module middlewares once, then lets mount
// register routes. The prefix is normalized to a single leading slash ("trust/" mounts at /trust);
// an empty or root prefix panics since a module must not claim the whole router
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(str.MustPrefix(prefix), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		if mount != nil {
			mount(sub)
		}
	})
}
