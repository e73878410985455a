// Package recommend holds the value types of the recommendation domain:
// validated requests and ranked recommendations.
package recommend

import (
	"fmt"
	"strings"

	"github.com/litmatch/litmatch/internal/domain"
)

// Stock request limits, used when the configuration supplies none.
const (
	DefaultMaxResults = 5
	DefaultCeiling    = 20
)

// Limits bounds how many recommendations a request may ask for.
type Limits struct {
	Default int // used when max_results is omitted
	Ceiling int // largest accepted max_results
}

// DefaultLimits returns the stock request limits.
func DefaultLimits() Limits {
	return Limits{Default: DefaultMaxResults, Ceiling: DefaultCeiling}
}

// Request is a validated recommendation query.
type Request struct {
	text       string
	maxResults int
}

// New validates request parameters. text must be non-empty after trimming.
// maxResults is optional; when supplied it must be at least 1 and at most
// limits.Ceiling, when nil the limits.Default applies. An out-of-range value
// is rejected, never clamped.
func New(text string, maxResults *int, limits Limits) (Request, error) {
	if strings.TrimSpace(text) == "" {
		return Request{}, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	if limits.Default <= 0 {
		limits.Default = DefaultMaxResults
	}
	if limits.Ceiling <= 0 {
		limits.Ceiling = DefaultCeiling
	}

	n := limits.Default
	if maxResults != nil {
		if *maxResults < 1 {
			return Request{}, fmt.Errorf("%w: max_results must be a positive integer", domain.ErrValidation)
		}
		if *maxResults > limits.Ceiling {
			return Request{}, fmt.Errorf("%w: max_results must not exceed %d", domain.ErrValidation, limits.Ceiling)
		}
		n = *maxResults
	}

	return Request{text: text, maxResults: n}, nil
}

// Text returns the query text as supplied by the caller.
func (r *Request) Text() string { return r.text }

// MaxResults returns the resolved maximum number of recommendations.
func (r *Request) MaxResults() int { return r.maxResults }
