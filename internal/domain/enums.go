package domain

import "strings"

// BrandVoice identifies one of the fixed brand personas.
type BrandVoice string

const (
	BrandVoiceNike      BrandVoice = "nike"
	BrandVoiceApple     BrandVoice = "apple"
	BrandVoiceWendys    BrandVoice = "wendys"
	BrandVoiceSouthwest BrandVoice = "southwest"
)

func (b BrandVoice) String() string { return string(b) }

func (b BrandVoice) IsValid() bool {
	switch b {
	case BrandVoiceNike, BrandVoiceApple, BrandVoiceWendys, BrandVoiceSouthwest:
		return true
	}
	return false
}

// AllBrandVoices returns the brand voices in canonical order.
// Batch results and tie-breaks follow this order.
func AllBrandVoices() []BrandVoice {
	return []BrandVoice{BrandVoiceNike, BrandVoiceApple, BrandVoiceWendys, BrandVoiceSouthwest}
}

// ContentType identifies the output format the rewritten text targets.
type ContentType string

const (
	ContentTypeSocialMedia ContentType = "social_media"
	ContentTypeProduct     ContentType = "product"
	ContentTypeEmail       ContentType = "email"
	ContentTypeBlogPost    ContentType = "blog_post"
)

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeSocialMedia, ContentTypeProduct, ContentTypeEmail, ContentTypeBlogPost:
		return true
	}
	return false
}

// Label is the human-readable form inserted into prompts ("social media").
func (c ContentType) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// AllContentTypes returns the content types in canonical order.
func AllContentTypes() []ContentType {
	return []ContentType{ContentTypeSocialMedia, ContentTypeProduct, ContentTypeEmail, ContentTypeBlogPost}
}

func brandVoiceIndex(b BrandVoice) int {
	for i, v := range AllBrandVoices() {
		if v == b {
			return i
		}
	}
	return len(AllBrandVoices())
}

func contentTypeIndex(c ContentType) int {
	for i, v := range AllContentTypes() {
		if v == c {
			return i
		}
	}
	return len(AllContentTypes())
}

// CompareBrandVoices orders brand voices by canonical position.
// Unknown values sort after known ones, then lexically.
func CompareBrandVoices(a, b BrandVoice) int {
	ia, ib := brandVoiceIndex(a), brandVoiceIndex(b)
	if ia != ib {
		return ia - ib
	}
	return strings.Compare(string(a), string(b))
}

// CompareContentTypes orders content types by canonical position.
func CompareContentTypes(a, b ContentType) int {
	ia, ib := contentTypeIndex(a), contentTypeIndex(b)
	if ia != ib {
		return ia - ib
	}
	return strings.Compare(string(a), string(b))
}
