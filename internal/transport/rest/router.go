package rest

import "net/http"

// Handlers groups every handler the router mounts.
type Handlers struct {
	Transform *TransformHandler
	Analytics *AnalyticsHandler
	Health    *HealthHandler
}

// NewRouter registers the API and probe routes using Go 1.22 patterns.
// Unknown paths get 404 and wrong methods 405 from http.ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/transform", h.Transform.Transform)
	mux.HandleFunc("POST /api/transform-all", h.Transform.TransformAll)
	mux.HandleFunc("POST /api/regenerate", h.Transform.Regenerate)
	mux.HandleFunc("GET /api/transformations", h.Transform.List)
	mux.HandleFunc("GET /api/analytics", h.Analytics.Get)
	mux.HandleFunc("GET /api/brand-voices", BrandVoices)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
