package rest

import (
	"time"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
	"github.com/heartmarshall/brandvoice-backend/internal/service/analytics"
)

type transformRequest struct {
	Text        string `json:"text"`
	BrandVoice  string `json:"brandVoice"`
	ContentType string `json:"contentType"`
}

type transformAllRequest struct {
	Text        string `json:"text"`
	ContentType string `json:"contentType"`
}

type transformationResultResponse struct {
	OriginalText    string   `json:"originalText"`
	TransformedText string   `json:"transformedText"`
	BrandVoice      string   `json:"brandVoice"`
	ContentType     string   `json:"contentType"`
	Characteristics []string `json:"characteristics"`
	GenerationTime  float64  `json:"generationTime"`
}

type batchResponse struct {
	OriginalText    string                         `json:"originalText"`
	ContentType     string                         `json:"contentType"`
	Transformations []transformationResultResponse `json:"transformations"`
}

type transformationResponse struct {
	ID              int64     `json:"id"`
	OriginalText    string    `json:"originalText"`
	BrandVoice      string    `json:"brandVoice"`
	ContentType     string    `json:"contentType"`
	TransformedText string    `json:"transformedText"`
	CreatedAt       time.Time `json:"createdAt"`
}

type transformationsResponse struct {
	Transformations []transformationResponse `json:"transformations"`
}

type counterResponse struct {
	ID          int64  `json:"id"`
	BrandVoice  string `json:"brandVoice"`
	ContentType string `json:"contentType"`
	Count       int64  `json:"count"`
}

type brandVoiceCountResponse struct {
	BrandVoice string `json:"brandVoice"`
	Count      int64  `json:"count"`
}

type contentTypeCountResponse struct {
	ContentType string `json:"contentType"`
	Count       int64  `json:"count"`
}

type analyticsResponse struct {
	Analytics           []counterResponse          `json:"analytics"`
	PopularBrandVoices  []brandVoiceCountResponse  `json:"popularBrandVoices"`
	PopularContentTypes []contentTypeCountResponse `json:"popularContentTypes"`
}

type brandVoiceResponse struct {
	ID              string   `json:"id"`
	DisplayName     string   `json:"displayName"`
	Description     string   `json:"description"`
	Tone            string   `json:"tone"`
	Style           string   `json:"style"`
	Vocabulary      string   `json:"vocabulary"`
	Characteristics []string `json:"characteristics"`
}

type contentTypeResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type catalogResponse struct {
	BrandVoices  []brandVoiceResponse  `json:"brandVoices"`
	ContentTypes []contentTypeResponse `json:"contentTypes"`
}

func toResultResponse(r domain.TransformationResult) transformationResultResponse {
	chars := r.Characteristics
	if chars == nil {
		chars = []string{}
	}
	return transformationResultResponse{
		OriginalText:    r.OriginalText,
		TransformedText: r.TransformedText,
		BrandVoice:      string(r.BrandVoice),
		ContentType:     string(r.ContentType),
		Characteristics: chars,
		GenerationTime:  r.GenerationTime,
	}
}

func toBatchResponse(b *domain.BatchResult) batchResponse {
	out := batchResponse{
		OriginalText:    b.OriginalText,
		ContentType:     string(b.ContentType),
		Transformations: make([]transformationResultResponse, len(b.Transformations)),
	}
	for i, r := range b.Transformations {
		out.Transformations[i] = toResultResponse(r)
	}
	return out
}

func toTransformationsResponse(list []domain.Transformation) transformationsResponse {
	out := transformationsResponse{Transformations: make([]transformationResponse, len(list))}
	for i, t := range list {
		out.Transformations[i] = transformationResponse{
			ID:              t.ID,
			OriginalText:    t.OriginalText,
			BrandVoice:      string(t.BrandVoice),
			ContentType:     string(t.ContentType),
			TransformedText: t.TransformedText,
			CreatedAt:       t.CreatedAt.UTC(),
		}
	}
	return out
}

func toAnalyticsResponse(s *analytics.Summary) analyticsResponse {
	out := analyticsResponse{
		Analytics:           make([]counterResponse, len(s.Analytics)),
		PopularBrandVoices:  make([]brandVoiceCountResponse, len(s.PopularBrandVoices)),
		PopularContentTypes: make([]contentTypeCountResponse, len(s.PopularContentTypes)),
	}
	for i, c := range s.Analytics {
		out.Analytics[i] = counterResponse{
			ID:          c.ID,
			BrandVoice:  string(c.BrandVoice),
			ContentType: string(c.ContentType),
			Count:       c.Count,
		}
	}
	for i, c := range s.PopularBrandVoices {
		out.PopularBrandVoices[i] = brandVoiceCountResponse{BrandVoice: string(c.BrandVoice), Count: c.Count}
	}
	for i, c := range s.PopularContentTypes {
		out.PopularContentTypes[i] = contentTypeCountResponse{ContentType: string(c.ContentType), Count: c.Count}
	}
	return out
}

func toCatalogResponse() catalogResponse {
	profiles := domain.BrandVoiceProfiles()
	types := domain.AllContentTypes()

	out := catalogResponse{
		BrandVoices:  make([]brandVoiceResponse, len(profiles)),
		ContentTypes: make([]contentTypeResponse, len(types)),
	}
	for i, p := range profiles {
		out.BrandVoices[i] = brandVoiceResponse{
			ID:              string(p.ID),
			DisplayName:     p.DisplayName,
			Description:     p.Description,
			Tone:            p.Tone,
			Style:           p.Style,
			Vocabulary:      p.Vocabulary,
			Characteristics: p.Characteristics,
		}
	}
	for i, ct := range types {
		out.ContentTypes[i] = contentTypeResponse{ID: string(ct), Label: ct.Label()}
	}
	return out
}
