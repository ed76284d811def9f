package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabe7855/FindMe/internal/api/handlers"
	"github.com/nabe7855/FindMe/internal/application/services"
	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/presenter"
)

type fixedProvider struct {
	results []entities.RecommendationResult
	err     error
}

func (p *fixedProvider) Recommend(ctx context.Context, input string) ([]entities.RecommendationResult, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.results, nil
}

type conciergeResponse struct {
	Status  string                          `json:"status"`
	Message string                          `json:"message"`
	Results []entities.RecommendationResult `json:"results"`
	View    presenter.View                  `json:"view"`
}

func postConcierge(t *testing.T, handler *handlers.ConciergeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/concierge", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Recommend(rec, req)
	return rec
}

func TestConcierge_Success(t *testing.T) {
	provider := &fixedProvider{results: []entities.RecommendationResult{
		{Name: "Cafe Aoba", Genre: "カフェ", Area: "吉祥寺", RecommendationReason: "静かで落ち着けます"},
	}}
	handler := handlers.NewConciergeHandler(provider)

	rec := postConcierge(t, handler, `{"user_input":"静かなカフェを探している"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp conciergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "succeeded", resp.Status)
	assert.Empty(t, resp.Message)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Cafe Aoba", resp.Results[0].Name)

	require.Len(t, resp.View.Cards, 1)
	assert.Equal(t, presenter.TemplateRecommendationCard, resp.View.Cards[0].Template)
}

func TestConcierge_BackendFailureStillReturns200WithFallback(t *testing.T) {
	provider := &fixedProvider{err: context.DeadlineExceeded}
	handler := handlers.NewConciergeHandler(provider)

	rec := postConcierge(t, handler, `{"user_input":"おすすめのレストラン"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp conciergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, services.ConciergeErrorMessage, resp.Message)
	assert.Len(t, resp.Results, 3)
	assert.Len(t, resp.View.Cards, 3)
}

func TestConcierge_DegradedModeWithoutProvider(t *testing.T) {
	handler := handlers.NewConciergeHandler(nil)

	rec := postConcierge(t, handler, `{"user_input":"デートに使える店"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp conciergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.Len(t, resp.Results, 3)
}

func TestConcierge_EmptyInputRejected(t *testing.T) {
	handler := handlers.NewConciergeHandler(&fixedProvider{})

	rec := postConcierge(t, handler, `{"user_input":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConcierge_MalformedBodyRejected(t *testing.T) {
	handler := handlers.NewConciergeHandler(&fixedProvider{})

	rec := postConcierge(t, handler, `{user_input`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// echoProvider answers each call with a result named after its input,
// and blocks the first call until released so two requests overlap.
type echoProvider struct {
	mu           sync.Mutex
	calls        int
	firstStarted chan struct{}
	release      chan struct{}
}

func (p *echoProvider) Recommend(ctx context.Context, input string) ([]entities.RecommendationResult, error) {
	p.mu.Lock()
	p.calls++
	first := p.calls == 1
	p.mu.Unlock()
	if first {
		close(p.firstStarted)
		<-p.release
	}
	return []entities.RecommendationResult{
		{ID: 1, Name: input, Genre: "カフェ", Area: "渋谷", RecommendationReason: "ご要望に合わせた提案です"},
	}, nil
}

// Two overlapping requests must each receive their own results. The
// first request's backend call resolves after the second request has
// fully completed; neither response may carry the other's batch.
func TestConcierge_ConcurrentRequestsKeepResultsSeparate(t *testing.T) {
	provider := &echoProvider{
		firstStarted: make(chan struct{}),
		release:      make(chan struct{}),
	}
	handler := handlers.NewConciergeHandler(provider)

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		firstDone <- postConcierge(t, handler, `{"user_input":"静かなカフェ"}`)
	}()
	<-provider.firstStarted

	// second request runs to completion while the first is in flight
	secondRec := postConcierge(t, handler, `{"user_input":"夜景の見えるバー"}`)

	close(provider.release)
	firstRec := <-firstDone

	var first, second conciergeResponse
	require.Equal(t, http.StatusOK, firstRec.Code)
	require.Equal(t, http.StatusOK, secondRec.Code)
	require.NoError(t, json.Unmarshal(firstRec.Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(secondRec.Body.Bytes(), &second))

	assert.Equal(t, "succeeded", first.Status)
	assert.Equal(t, "succeeded", second.Status)
	require.Len(t, first.Results, 1)
	require.Len(t, second.Results, 1)
	assert.Equal(t, "静かなカフェ", first.Results[0].Name)
	assert.Equal(t, "夜景の見えるバー", second.Results[0].Name)
}
