package transform

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// MaxTextLength caps the source text, in characters.
const MaxTextLength = 10000

// TransformInput holds parameters for a single-brand transformation.
type TransformInput struct {
	Text        string
	BrandVoice  domain.BrandVoice
	ContentType domain.ContentType
}

// Validate validates the transform input. All field errors are collected.
func (i TransformInput) Validate() error {
	var errs []domain.FieldError

	errs = validateText(errs, i.Text)

	if i.BrandVoice == "" {
		errs = append(errs, domain.FieldError{Field: "brandVoice", Message: "required"})
	} else if !i.BrandVoice.IsValid() {
		errs = append(errs, domain.FieldError{Field: "brandVoice", Message: "must be one of: " + joinBrandVoices()})
	}

	errs = validateContentType(errs, i.ContentType)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TransformAllInput holds parameters for a transformation into every brand voice.
type TransformAllInput struct {
	Text        string
	ContentType domain.ContentType
}

// Validate validates the transform-all input.
func (i TransformAllInput) Validate() error {
	var errs []domain.FieldError

	errs = validateText(errs, i.Text)
	errs = validateContentType(errs, i.ContentType)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, text string) []domain.FieldError {
	if strings.TrimSpace(text) == "" {
		return append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("must be at most %d characters", MaxTextLength)})
	}
	return errs
}

func validateContentType(errs []domain.FieldError, ct domain.ContentType) []domain.FieldError {
	if ct == "" {
		return append(errs, domain.FieldError{Field: "contentType", Message: "required"})
	}
	if !ct.IsValid() {
		return append(errs, domain.FieldError{Field: "contentType", Message: "must be one of: " + joinContentTypes()})
	}
	return errs
}

func joinBrandVoices() string {
	all := domain.AllBrandVoices()
	parts := make([]string, len(all))
	for i, b := range all {
		parts[i] = string(b)
	}
	return strings.Join(parts, ", ")
}

func joinContentTypes() string {
	all := domain.AllContentTypes()
	parts := make([]string, len(all))
	for i, c := range all {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
