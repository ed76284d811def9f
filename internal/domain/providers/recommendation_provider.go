package providers

import (
	"context"
	"errors"

	"github.com/nabe7855/FindMe/internal/domain/entities"
)

// Classified failures of a recommendation request, checked in order:
// transport before parsing, parsing before shape.
var (
	// ErrBackendUnavailable covers missing credentials and transport
	// failures
	ErrBackendUnavailable = errors.New("recommendation backend unavailable")

	// ErrMalformedResponse means the backend answered with something that
	// is not parseable JSON
	ErrMalformedResponse = errors.New("recommendation response is not valid JSON")

	// ErrSchemaViolation means the payload parsed but is not an array of
	// suggestions
	ErrSchemaViolation = errors.New("recommendation response does not match the expected shape")
)

// RecommendationProvider turns free-text user intent into ranked store
// suggestions. Implementations classify every failure as one of the
// sentinel errors above so callers can degrade deterministically.
type RecommendationProvider interface {
	Recommend(ctx context.Context, userInput string) ([]entities.RecommendationResult, error)
}
