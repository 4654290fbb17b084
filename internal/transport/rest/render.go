package rest

import (
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
	"github.com/heartmarshall/brandvoice-backend/internal/service/analytics"
)

// The CLI prints the same JSON bodies the HTTP API returns. These render
// domain values into those bodies for encoding/json.

func ResultBody(r domain.TransformationResult) any { return toResultResponse(r) }

func BatchBody(b *domain.BatchResult) any { return toBatchResponse(b) }

func HistoryBody(list []domain.Transformation) any { return toTransformationsResponse(list) }

func AnalyticsBody(s *analytics.Summary) any { return toAnalyticsResponse(s) }

func CatalogBody() any { return toCatalogResponse() }
