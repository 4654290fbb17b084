package domain

// AnalyticsCounter counts completed transformations for one
// (BrandVoice, ContentType) pair. At most one counter exists per pair.
type AnalyticsCounter struct {
	ID          int64
	BrandVoice  BrandVoice
	ContentType ContentType
	Count       int64
}

// BrandVoiceCount is a counter total grouped by brand voice.
type BrandVoiceCount struct {
	BrandVoice BrandVoice
	Count      int64
}

// ContentTypeCount is a counter total grouped by content type.
type ContentTypeCount struct {
	ContentType ContentType
	Count       int64
}
