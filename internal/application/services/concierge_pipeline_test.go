package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/providers"
	apperrors "github.com/nabe7855/FindMe/pkg/errors"
)

// stubProvider scripts one response per call, in order. A call beyond
// the script blocks until release is closed.
type stubProvider struct {
	mu      sync.Mutex
	script  []func(input string) ([]entities.RecommendationResult, error)
	calls   int
	release chan struct{}
}

func (s *stubProvider) Recommend(ctx context.Context, input string) ([]entities.RecommendationResult, error) {
	s.mu.Lock()
	call := s.calls
	s.calls++
	s.mu.Unlock()

	if call < len(s.script) {
		return s.script[call](input)
	}
	<-s.release
	return nil, providers.ErrBackendUnavailable
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func suggestion(name string) entities.RecommendationResult {
	return entities.RecommendationResult{Name: name, Genre: "カフェ", Area: "渋谷", RecommendationReason: "test"}
}

func TestConciergePipeline_EmptyInputRejectedWithoutStateChange(t *testing.T) {
	pipeline := NewConciergePipeline(&stubProvider{})

	for _, input := range []string{"", "   ", "\n\t"} {
		err := pipeline.Submit(context.Background(), input)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}

	assert.Equal(t, PipelineIdle, pipeline.Status())
	assert.Empty(t, pipeline.Results())
	assert.Empty(t, pipeline.ErrorMessage())
	assert.Empty(t, pipeline.LastInput())
}

func TestConciergePipeline_SuccessfulSubmission(t *testing.T) {
	provider := &stubProvider{script: []func(string) ([]entities.RecommendationResult, error){
		func(input string) ([]entities.RecommendationResult, error) {
			assert.Equal(t, "静かなカフェ", input)
			return []entities.RecommendationResult{suggestion("Cafe Aoba")}, nil
		},
	}}
	pipeline := NewConciergePipeline(provider)

	err := pipeline.Submit(context.Background(), "  静かなカフェ  ")
	require.NoError(t, err)

	assert.Equal(t, PipelineSucceeded, pipeline.Status())
	require.Len(t, pipeline.Results(), 1)
	assert.Equal(t, "Cafe Aoba", pipeline.Results()[0].Name)
	assert.Empty(t, pipeline.ErrorMessage())
	assert.Equal(t, "静かなカフェ", pipeline.LastInput())
}

func TestConciergePipeline_FailureServesFixedMessageAndFallback(t *testing.T) {
	provider := &stubProvider{script: []func(string) ([]entities.RecommendationResult, error){
		func(string) ([]entities.RecommendationResult, error) {
			return nil, fmt.Errorf("%w: not valid json", providers.ErrMalformedResponse)
		},
	}}
	pipeline := NewConciergePipeline(provider)

	err := pipeline.Submit(context.Background(), "ラーメンが食べたい")
	require.Error(t, err)

	assert.Equal(t, PipelineFailed, pipeline.Status())
	assert.Equal(t, ConciergeErrorMessage, pipeline.ErrorMessage())
	assert.Len(t, pipeline.Results(), 3)
}

func TestConciergePipeline_NilProviderServesFallback(t *testing.T) {
	pipeline := NewConciergePipeline(nil)

	err := pipeline.Submit(context.Background(), "おすすめの店")
	require.Error(t, err)

	assert.Equal(t, PipelineFailed, pipeline.Status())
	assert.Equal(t, ConciergeErrorMessage, pipeline.ErrorMessage())
	assert.Equal(t, FallbackResults(), pipeline.Results())
}

func TestFallbackResults_Deterministic(t *testing.T) {
	first := FallbackResults()
	second := FallbackResults()

	require.Len(t, first, 3)
	assert.Equal(t, first, second)

	// independent of pipeline state and input
	pipeline := NewConciergePipeline(nil)
	_ = pipeline.Submit(context.Background(), "全く違う入力")
	assert.Equal(t, first, pipeline.Results())
}

func TestConciergePipeline_StaleResolutionDiscarded(t *testing.T) {
	provider := &stubProvider{release: make(chan struct{})}
	provider.script = []func(string) ([]entities.RecommendationResult, error){
		// first call blocks until released, then fails
		func(string) ([]entities.RecommendationResult, error) {
			<-provider.release
			return nil, providers.ErrBackendUnavailable
		},
		// second call resolves immediately
		func(string) ([]entities.RecommendationResult, error) {
			return []entities.RecommendationResult{suggestion("Bistro Hana")}, nil
		},
	}
	pipeline := NewConciergePipeline(provider)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- pipeline.Submit(context.Background(), "最初の入力")
	}()

	// wait until the first call is actually inside the provider
	for provider.callCount() == 0 {
		time.Sleep(time.Millisecond)
	}

	require.NoError(t, pipeline.Submit(context.Background(), "新しい入力"))
	assert.Equal(t, PipelineSucceeded, pipeline.Status())

	// the first submission resolves late; its failure must not overwrite
	// the newer result
	close(provider.release)
	require.NoError(t, <-firstDone)

	assert.Equal(t, PipelineSucceeded, pipeline.Status())
	require.Len(t, pipeline.Results(), 1)
	assert.Equal(t, "Bistro Hana", pipeline.Results()[0].Name)
	assert.Equal(t, "新しい入力", pipeline.LastInput())
}
