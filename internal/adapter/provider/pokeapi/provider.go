package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Ramon-Molinero/pokedex/internal/config"
	"github.com/Ramon-Molinero/pokedex/internal/provider"
)

const (
	defaultBaseURL = "https://pokeapi.co/api/v2/pokemon"
	defaultTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
)

// Provider fetches resource listings from PokeAPI.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from the seed configuration.
// Empty values fall back to the public PokeAPI endpoint and a 10s timeout.
func NewProvider(cfg config.SeedConfig, logger *slog.Logger) *Provider {
	baseURL := cfg.SourceURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: retryDelay,
		log:        logger.With("adapter", "pokeapi"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		retryDelay: retryDelay,
		log:        logger.With("adapter", "pokeapi"),
	}
}

// FetchList requests the first limit entries of the listing.
// Any non-2xx status, network failure or malformed body is an error; an
// empty results array is not.
func (p *Provider) FetchList(ctx context.Context, limit int) ([]provider.ListItem, error) {
	reqURL, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: parse base url: %w", err)
	}
	q := reqURL.Query()
	q.Set("limit", strconv.Itoa(limit))
	reqURL.RawQuery = q.Encode()

	p.log.DebugContext(ctx, "pokeapi request", slog.String("url", reqURL.String()))

	resp, err := p.doWithRetry(ctx, reqURL.String())
	if err != nil {
		p.log.ErrorContext(ctx, "pokeapi request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("pokeapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("pokeapi: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pokeapi: read body: %w", err)
	}

	var list apiList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("pokeapi: decode json: %w", err)
	}

	items := make([]provider.ListItem, 0, len(list.Results))
	for _, r := range list.Results {
		items = append(items, provider.ListItem{Name: r.Name, URL: r.URL})
	}

	p.log.DebugContext(ctx, "pokeapi response",
		slog.Int("status", resp.StatusCode),
		slog.Int("count", list.Count),
		slog.Int("results", len(items)),
	)

	return items, nil
}

// doWithRetry executes a GET with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, reqURL string) (*http.Response, error) {
	resp, err := p.do(ctx, reqURL)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "pokeapi retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.do(ctx, reqURL)
}

func (p *Provider) do(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return p.httpClient.Do(req)
}
