package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/brandvoice-backend/internal/service/analytics"
)

type analyticsService interface {
	Summary(ctx context.Context) (*analytics.Summary, error)
}

// AnalyticsHandler serves usage analytics.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Get handles GET /api/analytics.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalyticsResponse(summary))
}
