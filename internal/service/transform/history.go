package transform

import (
	"context"
	"fmt"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// ListTransformations returns recorded transformations, newest first.
// limit <= 0 uses the configured default; a limit above the maximum is a
// validation error.
func (s *Service) ListTransformations(ctx context.Context, limit int) ([]domain.Transformation, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultHistoryLimit
	}
	if limit > s.cfg.MaxHistoryLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be at most %d", s.cfg.MaxHistoryLimit))
	}

	list, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("transform.ListTransformations: %w", err)
	}
	return list, nil
}
