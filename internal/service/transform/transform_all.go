package transform

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// TransformAll rewrites the text in every brand voice concurrently.
// Results are in canonical brand order. The first backend failure cancels
// the remaining calls and fails the whole batch; nothing is recorded then.
// Every result carries the batch wall-clock time divided by the number of
// brands as its GenerationTime.
func (s *Service) TransformAll(ctx context.Context, input TransformAllInput) (*domain.BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	brands := domain.AllBrandVoices()
	results := make([]domain.TransformationResult, len(brands))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i, brand := range brands {
		g.Go(func() error {
			r, err := s.generate(gctx, input.Text, brand, input.ContentType)
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("transform.TransformAll: %w", err)
	}

	perBrand := time.Since(start).Seconds() / float64(len(brands))
	for i := range results {
		results[i].GenerationTime = perBrand
	}

	s.record(ctx, results...)

	return &domain.BatchResult{
		OriginalText:    input.Text,
		ContentType:     input.ContentType,
		Transformations: results,
	}, nil
}
