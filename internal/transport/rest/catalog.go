package rest

import "net/http"

// BrandVoices handles GET /api/brand-voices. The catalog is static.
func BrandVoices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toCatalogResponse())
}
