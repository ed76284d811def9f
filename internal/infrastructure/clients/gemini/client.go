package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/nabe7855/FindMe/internal/domain/entities"
	"github.com/nabe7855/FindMe/internal/domain/providers"
	"github.com/nabe7855/FindMe/pkg/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client implements the concierge recommendation provider against the
// Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	limiter    *tokenBucket
}

var _ providers.RecommendationProvider = (*Client)(nil)

// NewClient creates a new Gemini client. A missing API key is reported
// as an error here; the caller decides whether to run without a provider
// (degraded concierge mode) or fail.
func NewClient(cfg *config.GeminiConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		limiter: newTokenBucket(cfg.RateLimitRPM, cfg.RateLimitBurst),
	}, nil
}

// Close stops the rate limiter's refill goroutine. Safe to call more
// than once.
func (c *Client) Close() {
	if c.limiter != nil {
		c.limiter.stop()
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateCandidate struct {
	Content generateContent `json:"content"`
}

type generateEnvelope struct {
	Candidates []generateCandidate `json:"candidates"`
}

// Recommend asks the backend for store suggestions matching the user's
// free-text request. Failures are classified, first match wins:
// transport problems as ErrBackendUnavailable, unparseable payloads as
// ErrMalformedResponse, non-array payloads as ErrSchemaViolation.
// Element-level validation is deliberately lenient; objects with missing
// optional fields pass through as-is.
func (c *Client) Recommend(ctx context.Context, userInput string) ([]entities.RecommendationResult, error) {
	if c.limiter != nil {
		waitStart := time.Now()
		if err := c.limiter.Wait(ctx); err != nil {
			recordRequestMetric(ctx, c.model, 0, 0, err)
			return nil, fmt.Errorf("%w: %v", providers.ErrBackendUnavailable, err)
		}
		recordRateLimitWait(ctx, c.model, time.Since(waitStart))
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": buildConciergePrompt(userInput)}}},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   recommendationResponseSchema,
			"temperature":      0.7,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordRequestMetric(ctx, c.model, 0, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", providers.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("status %d", resp.StatusCode)
		recordRequestMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, fmt.Errorf("%w: gemini request failed with status %d", providers.ErrBackendUnavailable, resp.StatusCode)
	}

	var envelope generateEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		recordRequestMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", providers.ErrMalformedResponse, err)
	}

	text := extractText(&envelope)
	if text == "" {
		err := errors.New("missing candidate text")
		recordRequestMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, fmt.Errorf("%w: %v", providers.ErrMalformedResponse, err)
	}

	results, err := parseRecommendations(text)
	if err != nil {
		recordRequestMetric(ctx, c.model, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	recordRequestMetric(ctx, c.model, resp.StatusCode, time.Since(start), nil)
	return results, nil
}

func extractText(envelope *generateEnvelope) string {
	for _, candidate := range envelope.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// parseRecommendations validates the raw model output. Markdown code
// fences are stripped first; some models wrap JSON in them regardless of
// the requested mime type.
func parseRecommendations(text string) ([]entities.RecommendationResult, error) {
	cleaned := stripCodeFences(text)

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrMalformedResponse, err)
	}

	var results []entities.RecommendationResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of suggestions", providers.ErrSchemaViolation)
	}
	return results, nil
}

func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}

type tokenBucket struct {
	tokens chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newTokenBucket(rpm int, burst int) *tokenBucket {
	if rpm <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}

	bucket := &tokenBucket{
		tokens: make(chan struct{}, burst),
		done:   make(chan struct{}),
	}
	for i := 0; i < burst; i++ {
		bucket.tokens <- struct{}{}
	}

	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-bucket.done:
				return
			case <-ticker.C:
				select {
				case bucket.tokens <- struct{}{}:
				default:
				}
			}
		}
	}()

	return bucket
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.tokens:
		return nil
	}
}

func (b *tokenBucket) stop() {
	b.once.Do(func() {
		close(b.done)
	})
}
