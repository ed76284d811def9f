package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/providers"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PipelineStatus is the lifecycle state of the concierge pipeline
type PipelineStatus string

const (
	PipelineIdle      PipelineStatus = "idle"
	PipelineLoading   PipelineStatus = "loading"
	PipelineSucceeded PipelineStatus = "succeeded"
	PipelineFailed    PipelineStatus = "failed"
)

// ConciergeErrorMessage is the only error text ever shown to the user.
// Backend internals are never leaked.
const ConciergeErrorMessage = "AIコンシェルジュからの応答の取得に失敗しました。"

// ConciergePipeline turns free-text user intent into recommendation
// results via the AI backend, substituting a fixed fallback batch on any
// classified failure so the caller is never left empty-handed. Each
// pipeline instance tracks one logical in-flight call; a submission that
// resolves after a newer one has started is silently discarded.
type ConciergePipeline struct {
	provider providers.RecommendationProvider

	mu           sync.Mutex
	status       PipelineStatus
	lastInput    string
	results      []entities.RecommendationResult
	errorMessage string

	// generation is the per-call token compared at resolution time
	generation uint64
}

// NewConciergePipeline creates an idle pipeline. A nil provider is a
// valid degraded configuration (no credential): every submission then
// yields the fallback batch.
func NewConciergePipeline(provider providers.RecommendationProvider) *ConciergePipeline {
	return &ConciergePipeline{
		provider: provider,
		status:   PipelineIdle,
	}
}

// Submit asks the backend for recommendations. Blank input is rejected
// without any state change. The backend is invoked exactly once per
// submission; there is no automatic retry.
func (p *ConciergePipeline) Submit(ctx context.Context, userInput string) error {
	input := strings.TrimSpace(userInput)
	if input == "" {
		return apperrors.NewValidationError("user input must not be empty")
	}

	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.status = PipelineLoading
	p.lastInput = input
	p.errorMessage = ""
	p.results = nil
	p.mu.Unlock()

	results, err := p.invoke(ctx, input)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		// A newer submission owns the state now
		return nil
	}

	if err != nil {
		log.Warn().Err(err).Msg("concierge request failed, serving fallback")
		p.status = PipelineFailed
		p.errorMessage = ConciergeErrorMessage
		p.results = FallbackResults()
		return classifyProviderError(err)
	}

	p.status = PipelineSucceeded
	p.results = results
	return nil
}

// classifyProviderError lifts the provider's sentinel errors into the
// application error taxonomy. Already-classified errors pass through.
func classifyProviderError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, providers.ErrMalformedResponse):
		return apperrors.NewMalformedResponseError(err)
	case errors.Is(err, providers.ErrSchemaViolation):
		return apperrors.NewSchemaViolationError(err)
	case errors.Is(err, providers.ErrBackendUnavailable):
		return apperrors.NewBackendUnavailableError(err)
	}
	return err
}

func (p *ConciergePipeline) invoke(ctx context.Context, input string) ([]entities.RecommendationResult, error) {
	if p.provider == nil {
		return nil, apperrors.NewBackendUnavailableError(providers.ErrBackendUnavailable)
	}
	return p.provider.Recommend(ctx, input)
}

// Status returns the current lifecycle state
func (p *ConciergePipeline) Status() PipelineStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Results returns the current recommendation batch
func (p *ConciergePipeline) Results() []entities.RecommendationResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// ErrorMessage returns the user-facing error text, empty unless failed
func (p *ConciergePipeline) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errorMessage
}

// LastInput returns the most recently accepted user input
func (p *ConciergePipeline) LastInput() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastInput
}

// FallbackResults returns the designed degraded-mode batch: the same
// three suggestions every time, independent of the user's input.
func FallbackResults() []entities.RecommendationResult {
	return []entities.RecommendationResult{
		{
			ID:                   1,
			Name:                 "カフェ・ルミエール",
			RecommendationReason: "静かで落ち着いた雰囲気のカフェです。読書にも最適。",
			Genre:                "カフェ",
			Area:                 "渋谷",
			Prefecture:           "東京都",
			ImageURL:             "https://picsum.photos/seed/mock1/800/600",
		},
		{
			ID:                   2,
			Name:                 "カフェ・ノワール",
			RecommendationReason: "落ち着いた雰囲気と香り高いコーヒーが楽しめる人気店です。",
			Genre:                "カフェ",
			Area:                 "代官山",
			Prefecture:           "東京都",
			ImageURL:             "https://picsum.photos/seed/mock2/800/600",
		},
		{
			ID:                   3,
			Name:                 "ブルーム珈琲店",
			RecommendationReason: "駅近でアクセスも抜群。友人との会話にもぴったり。",
			Genre:                "カフェ",
			Area:                 "新宿",
			Prefecture:           "東京都",
			ImageURL:             "https://picsum.photos/seed/mock3/800/600",
		},
	}
}
