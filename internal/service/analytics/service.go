package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

type counterRepo interface {
	Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error)
	List(ctx context.Context) ([]domain.AnalyticsCounter, error)
}

// DefaultTopLimit is used by the top-N queries when limit <= 0.
const DefaultTopLimit = 4

// Summary is the full analytics view.
type Summary struct {
	Analytics           []domain.AnalyticsCounter
	PopularBrandVoices  []domain.BrandVoiceCount
	PopularContentTypes []domain.ContentTypeCount
}

// Service maintains and queries usage counters.
type Service struct {
	log      *slog.Logger
	counters counterRepo
}

// NewService creates a new analytics service.
func NewService(logger *slog.Logger, counters counterRepo) *Service {
	return &Service{
		log:      logger.With("service", "analytics"),
		counters: counters,
	}
}

// Increment adds one to the counter for (brand, ct), creating it with
// count 1 on first use. Atomicity per key is the repository's guarantee.
func (s *Service) Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error) {
	var errs []domain.FieldError
	if !brand.IsValid() {
		errs = append(errs, domain.FieldError{Field: "brandVoice", Message: "unsupported value"})
	}
	if !ct.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contentType", Message: "unsupported value"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	c, err := s.counters.Increment(ctx, brand, ct)
	if err != nil {
		return nil, fmt.Errorf("analytics.Increment: %w", err)
	}
	return c, nil
}

// ListAll returns every counter.
func (s *Service) ListAll(ctx context.Context) ([]domain.AnalyticsCounter, error) {
	list, err := s.counters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListAll: %w", err)
	}
	return list, nil
}

// TopBrandVoices sums counters per brand voice and returns the largest
// first. Equal totals keep canonical brand order.
func (s *Service) TopBrandVoices(ctx context.Context, limit int) ([]domain.BrandVoiceCount, error) {
	list, err := s.counters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopBrandVoices: %w", err)
	}
	return topBrandVoices(list, limit), nil
}

// TopContentTypes sums counters per content type and returns the largest
// first. Equal totals keep canonical content type order.
func (s *Service) TopContentTypes(ctx context.Context, limit int) ([]domain.ContentTypeCount, error) {
	list, err := s.counters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopContentTypes: %w", err)
	}
	return topContentTypes(list, limit), nil
}

// Summary returns all counters and both top lists from a single read.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	list, err := s.counters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.Summary: %w", err)
	}
	return &Summary{
		Analytics:           list,
		PopularBrandVoices:  topBrandVoices(list, DefaultTopLimit),
		PopularContentTypes: topContentTypes(list, DefaultTopLimit),
	}, nil
}

func topBrandVoices(list []domain.AnalyticsCounter, limit int) []domain.BrandVoiceCount {
	sums := make(map[domain.BrandVoice]int64)
	for _, c := range list {
		sums[c.BrandVoice] += c.Count
	}

	out := make([]domain.BrandVoiceCount, 0, len(sums))
	for b, n := range sums {
		out = append(out, domain.BrandVoiceCount{BrandVoice: b, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.BrandVoiceCount) int {
		if a.Count != b.Count {
			return cmpDesc(a.Count, b.Count)
		}
		return domain.CompareBrandVoices(a.BrandVoice, b.BrandVoice)
	})
	return truncate(out, limit)
}

func topContentTypes(list []domain.AnalyticsCounter, limit int) []domain.ContentTypeCount {
	sums := make(map[domain.ContentType]int64)
	for _, c := range list {
		sums[c.ContentType] += c.Count
	}

	out := make([]domain.ContentTypeCount, 0, len(sums))
	for ct, n := range sums {
		out = append(out, domain.ContentTypeCount{ContentType: ct, Count: n})
	}
	slices.SortFunc(out, func(a, b domain.ContentTypeCount) int {
		if a.Count != b.Count {
			return cmpDesc(a.Count, b.Count)
		}
		return domain.CompareContentTypes(a.ContentType, b.ContentType)
	})
	return truncate(out, limit)
}

func cmpDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func truncate[T any](s []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
