// Package gtranslate fetches coarse translations from the unofficial Google
// Translate web endpoint. It is the fast Stage-1 source: a whole-phrase
// gloss plus romanization, no linguistic analysis.
package gtranslate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/provider"
)

const (
	sourceLang = "th"
	targetLang = "en"
)

// Provider fetches coarse translations from the gtx translate endpoint.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given base URL (the
// translate_a/single endpoint) with the given request timeout.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "gtranslate"),
	}
}

// FetchCoarseTranslation translates text Thai→English with romanization.
// All failures wrap domain.ErrTranslationUnavailable.
func (p *Provider) FetchCoarseTranslation(ctx context.Context, text string) (provider.CoarseResult, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sourceLang)
	q.Set("tl", targetLang)
	q.Add("dt", "t")
	q.Add("dt", "rm")
	q.Set("q", text)
	reqURL := p.baseURL + "?" + q.Encode()

	p.log.DebugContext(ctx, "gtranslate request", slog.String("text", text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return provider.CoarseResult{}, unavailable(fmt.Errorf("create request: %w", err))
	}

	resp, err := p.doWithRetry(ctx, req, text)
	if err != nil {
		p.log.ErrorContext(ctx, "gtranslate request failed",
			slog.String("text", text), slog.String("error", err.Error()))
		return provider.CoarseResult{}, unavailable(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return provider.CoarseResult{}, unavailable(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return provider.CoarseResult{}, unavailable(fmt.Errorf("read body: %w", err))
	}

	result, err := parseResponse(body)
	if err != nil {
		return provider.CoarseResult{}, unavailable(err)
	}
	if result.TranslatedText == "" {
		return provider.CoarseResult{}, unavailable(fmt.Errorf("empty translation"))
	}

	p.log.DebugContext(ctx, "gtranslate response",
		slog.String("text", text),
		slog.String("translated", result.TranslatedText),
	)

	return result, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, text string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "gtranslate retry", slog.String("text", text), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return p.httpClient.Do(req)
}

func unavailable(err error) error {
	return fmt.Errorf("gtranslate: %w: %w", domain.ErrTranslationUnavailable, err)
}
