package chi

import (
	recommenduc "github.com/litmatch/litmatch/internal/usecase/recommend"
)

// ErrorCode enumerates machine-readable error codes.
type ErrorCode string

const (
	// CodeBadRequest marks an unparseable request.
	CodeBadRequest ErrorCode = "bad_request"
	// CodeValidationFailed marks a parseable but invalid request.
	CodeValidationFailed ErrorCode = "validation_failed"
	// CodeNotIndexed marks a query arriving before the first successful build.
	CodeNotIndexed ErrorCode = "not_indexed"
	// CodeCorpusUnavailable marks a rebuild whose corpus source failed.
	CodeCorpusUnavailable ErrorCode = "corpus_unavailable"
	// CodeUnauthorized marks a missing or invalid API key.
	CodeUnauthorized ErrorCode = "unauthorized"
	// CodeInternalError marks an unexpected failure; details are only logged.
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RecommendationRequest is the POST /recommendations body.
type RecommendationRequest struct {
	Text       string `json:"text"`
	MaxResults *int   `json:"max_results,omitempty"`
}

// PaperRecommendation is a single ranked paper in a response.
type PaperRecommendation struct {
	Title   string  `json:"title"`
	Score   float64 `json:"score"`
	ArxivID *string `json:"arxiv_id,omitempty"`
	URL     *string `json:"url,omitempty"`
}

// RecommendationResponse echoes the query and carries the ranked list.
type RecommendationResponse struct {
	Query           string                `json:"query"`
	Recommendations []PaperRecommendation `json:"recommendations"`
	Count           int                   `json:"count"`
}

// RebuildResponse reports the dimensions of a freshly built index.
type RebuildResponse struct {
	Documents int `json:"documents"`
	Terms     int `json:"terms"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func responseToJSON(resp recommenduc.Response) RecommendationResponse {
	items := make([]PaperRecommendation, len(resp.Items))
	for i := range resp.Items {
		rec := &resp.Items[i]
		item := PaperRecommendation{
			Title: rec.Paper().Title,
			Score: rec.Score(),
		}
		if id := rec.Paper().ID; id != "" {
			item.ArxivID = &id
		}
		if link := rec.Paper().Link(); link != "" {
			item.URL = &link
		}
		items[i] = item
	}
	return RecommendationResponse{
		Query:           resp.Query,
		Recommendations: items,
		Count:           len(items),
	}
}
