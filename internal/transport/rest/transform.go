package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
	"github.com/heartmarshall/brandvoice-backend/internal/service/transform"
)

// transformService defines the minimal interface needed by TransformHandler.
type transformService interface {
	TransformOne(ctx context.Context, input transform.TransformInput) (*domain.TransformationResult, error)
	TransformAll(ctx context.Context, input transform.TransformAllInput) (*domain.BatchResult, error)
	Regenerate(ctx context.Context, input transform.TransformInput) (*domain.TransformationResult, error)
	ListTransformations(ctx context.Context, limit int) ([]domain.Transformation, error)
}

// TransformHandler serves the transformation endpoints.
type TransformHandler struct {
	svc transformService
	log *slog.Logger
}

// NewTransformHandler creates a TransformHandler.
func NewTransformHandler(svc transformService, logger *slog.Logger) *TransformHandler {
	return &TransformHandler{svc: svc, log: logger.With("handler", "transform")}
}

// Transform handles POST /api/transform.
func (h *TransformHandler) Transform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.TransformOne(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(*result))
}

// TransformAll handles POST /api/transform-all.
func (h *TransformHandler) TransformAll(w http.ResponseWriter, r *http.Request) {
	var req transformAllRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	batch, err := h.svc.TransformAll(r.Context(), transform.TransformAllInput{
		Text:        req.Text,
		ContentType: domain.ContentType(req.ContentType),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponse(batch))
}

// Regenerate handles POST /api/regenerate.
func (h *TransformHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Regenerate(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(*result))
}

// List handles GET /api/transformations?limit=N.
func (h *TransformHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit: must be an integer")
			return
		}
		limit = n
	}

	list, err := h.svc.ListTransformations(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransformationsResponse(list))
}

func (req transformRequest) toInput() transform.TransformInput {
	return transform.TransformInput{
		Text:        req.Text,
		BrandVoice:  domain.BrandVoice(req.BrandVoice),
		ContentType: domain.ContentType(req.ContentType),
	}
}
