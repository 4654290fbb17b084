package domain

import "time"

// EmptyCompletionPlaceholder replaces an empty completion so that one empty
// answer does not abort a batch.
const EmptyCompletionPlaceholder = "Error: No response generated"

// Transformation is one persisted history row. ID is assigned by storage.
type Transformation struct {
	ID              int64
	OriginalText    string
	BrandVoice      BrandVoice
	ContentType     ContentType
	TransformedText string
	CreatedAt       time.Time
}

// TransformationResult is the response shape of a single rewrite.
// GenerationTime is in seconds.
type TransformationResult struct {
	OriginalText    string
	TransformedText string
	BrandVoice      BrandVoice
	ContentType     ContentType
	Characteristics []string
	GenerationTime  float64
}

// BatchResult holds one result per brand voice, in canonical order.
type BatchResult struct {
	OriginalText    string
	ContentType     ContentType
	Transformations []TransformationResult
}

// GenerationRequest is what the completion backend receives.
type GenerationRequest struct {
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
}
