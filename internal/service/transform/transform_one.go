package transform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// TransformOne rewrites the text in one brand voice.
// Returns a ValidationError for bad input and an error wrapping
// domain.ErrGeneration when the backend call fails. History and analytics
// are recorded before returning; a recording failure is logged, not returned.
func (s *Service) TransformOne(ctx context.Context, input TransformInput) (*domain.TransformationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := s.generate(ctx, input.Text, input.BrandVoice, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("transform.TransformOne: %w", err)
	}

	s.record(ctx, *result)
	return result, nil
}

// Regenerate redoes a single brand's transformation. It has the same
// contract as TransformOne and writes a new history row every time.
func (s *Service) Regenerate(ctx context.Context, input TransformInput) (*domain.TransformationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := s.generate(ctx, input.Text, input.BrandVoice, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("transform.Regenerate: %w", err)
	}

	s.record(ctx, *result)
	return result, nil
}

// generate performs one backend call and shapes the result. Input must
// already be validated.
func (s *Service) generate(ctx context.Context, text string, brand domain.BrandVoice, ct domain.ContentType) (*domain.TransformationResult, error) {
	profile, err := domain.LookupBrandVoice(brand)
	if err != nil {
		return nil, err
	}
	prompt, err := BuildPrompt(text, brand, ct)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := s.gen.Generate(ctx, domain.GenerationRequest{
		Prompt:      prompt,
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrGeneration, brand, err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		out = domain.EmptyCompletionPlaceholder
		s.log.WarnContext(ctx, "empty completion", slog.String("brand_voice", string(brand)))
	}

	return &domain.TransformationResult{
		OriginalText:    text,
		TransformedText: out,
		BrandVoice:      brand,
		ContentType:     ct,
		Characteristics: profile.Characteristics,
		GenerationTime:  max(elapsed.Seconds(), 0),
	}, nil
}

// record writes one history row and one counter increment per result in a
// single transaction. It runs detached from ctx cancellation so a client
// disconnect after generation does not drop the record.
func (s *Service) record(ctx context.Context, results ...domain.TransformationResult) {
	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, r := range results {
			if _, err := s.history.Create(txCtx, &domain.Transformation{
				OriginalText:    r.OriginalText,
				BrandVoice:      r.BrandVoice,
				ContentType:     r.ContentType,
				TransformedText: r.TransformedText,
				CreatedAt:       now,
			}); err != nil {
				return fmt.Errorf("create history %s: %w", r.BrandVoice, err)
			}
			if _, err := s.counters.Increment(txCtx, r.BrandVoice, r.ContentType); err != nil {
				return fmt.Errorf("increment %s/%s: %w", r.BrandVoice, r.ContentType, err)
			}
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		s.log.ErrorContext(ctx, "record transformation failed",
			slog.Int("results", len(results)),
			slog.String("error", err.Error()))
	}
}
