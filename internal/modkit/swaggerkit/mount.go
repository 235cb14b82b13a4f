// Package swaggerkit assembles the OpenAPI document from module mutators and mounts Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "reviewtrust/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount the Swagger UI and JSON spec under /api/docs if enabled
func Mount(r phttp.Router, enabled bool, title string) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(title))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("reviewtrust"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
