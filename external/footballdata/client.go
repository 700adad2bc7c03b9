package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gedeon250/football-api-app/internal/domain/competition"
	"github.com/Gedeon250/football-api-app/internal/domain/match"
	"github.com/Gedeon250/football-api-app/internal/platform/logging"
	"github.com/Gedeon250/football-api-app/internal/platform/resilience"
	"github.com/Gedeon250/football-api-app/internal/usecase"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v4"
	DefaultTimeout = 10 * time.Second

	authHeader      = "X-Auth-Token"
	maxResponseSize = 4 << 20

	EndpointCompetitions = "competitions"
	EndpointMatches      = "matches"
)

// StatusError is returned for any non-200 response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider status=%d body=%s", e.Code, e.Body)
}

// Observer records the latency of every upstream request.
type Observer interface {
	ObserveUpstream(endpoint, outcome string, elapsed time.Duration)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	Observer       Observer
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	timeout    time.Duration
	logger     *logging.Logger
	observer   Observer
	breaker    *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      strings.TrimSpace(cfg.Token),
		timeout:    timeout,
		logger:     logger,
		observer:   cfg.Observer,
		breaker:    resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// HasCredential reports whether requests carry an API token.
func (c *Client) HasCredential() bool {
	return c.token != ""
}

func (c *Client) ListCompetitions(ctx context.Context) ([]competition.Competition, error) {
	var payload competitionsEnvelope
	if err := c.doJSON(ctx, EndpointCompetitions, nil, &payload); err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(payload.Competitions))
	for _, item := range payload.Competitions {
		out = append(out, competition.Competition{
			Name: strings.TrimSpace(item.Name),
			Code: strings.TrimSpace(item.Code),
			Area: strings.TrimSpace(item.Area.Name),
			Plan: strings.TrimSpace(item.Plan),
		})
	}
	return out, nil
}

// ListMatches returns matches between dateFrom and dateTo (YYYY-MM-DD, inclusive).
func (c *Client) ListMatches(ctx context.Context, dateFrom, dateTo string) ([]match.Match, error) {
	query := url.Values{}
	query.Set("dateFrom", dateFrom)
	query.Set("dateTo", dateTo)

	var payload matchesEnvelope
	if err := c.doJSON(ctx, EndpointMatches, query, &payload); err != nil {
		return nil, fmt.Errorf("list matches %s..%s: %w", dateFrom, dateTo, err)
	}

	out := make([]match.Match, 0, len(payload.Matches))
	for _, item := range payload.Matches {
		out = append(out, mapMatch(item))
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, endpoint string, query url.Values, target any) error {
	fullURL := c.baseURL + "/" + endpoint
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.executeRequest(ctx, endpoint, fullURL)
		return reqErr
	}, countsAsCircuitFailure)
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.DebugContext(ctx, "football-data circuit breaker rejected request", "endpoint", endpoint, "state", c.breaker.State())
		}
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		c.observe(endpoint, "decode_error", 0)
		return crerr.Mark(fmt.Errorf("decode %s payload: %w", endpoint, err), usecase.ErrUpstreamPayload)
	}
	return nil
}

// executeRequest bounds the call with the client timeout. Errors caused by
// the caller's own ctx ending are returned unmarked.
func (c *Client) executeRequest(callerCtx context.Context, endpoint, fullURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(callerCtx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set(authHeader, c.token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if callerCtx.Err() != nil {
			c.observe(endpoint, "canceled", time.Since(started))
			return nil, fmt.Errorf("send request: %w", err)
		}
		c.observe(endpoint, "transport_error", time.Since(started))
		c.logger.DebugContext(ctx, "football-data request failed", "url", fullURL, "error", c.sanitize(err.Error()))
		return nil, crerr.Mark(fmt.Errorf("send request: %w", err), usecase.ErrUpstreamTransport)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if readErr != nil {
		if callerCtx.Err() != nil {
			c.observe(endpoint, "canceled", time.Since(started))
			return nil, fmt.Errorf("read response body: %w", readErr)
		}
		c.observe(endpoint, "transport_error", time.Since(started))
		return nil, crerr.Mark(fmt.Errorf("read response body: %w", readErr), usecase.ErrUpstreamTransport)
	}

	if resp.StatusCode != http.StatusOK {
		c.observe(endpoint, fmt.Sprintf("status_%d", resp.StatusCode), time.Since(started))
		c.logger.DebugContext(ctx, "football-data returned non-200", "url", fullURL, "status", resp.StatusCode)
		return nil, crerr.Mark(&StatusError{Code: resp.StatusCode, Body: abbreviateBody(raw)}, usecase.ErrUpstreamStatus)
	}

	c.observe(endpoint, "ok", time.Since(started))
	return raw, nil
}

func (c *Client) observe(endpoint, outcome string, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(endpoint, outcome, elapsed)
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return value
}

// countsAsCircuitFailure trips only on transport errors and 5xx. Caller
// cancellations and 4xx, 429 included, do not count.
func countsAsCircuitFailure(err error) bool {
	if crerr.Is(err, context.Canceled) {
		return false
	}
	if crerr.Is(err, usecase.ErrUpstreamTransport) {
		return true
	}
	var statusErr *StatusError
	if crerr.As(err, &statusErr) {
		return statusErr.Code >= http.StatusInternalServerError
	}
	return false
}

func mapMatch(item matchItem) match.Match {
	out := match.Match{
		HomeTeam:    strings.TrimSpace(item.HomeTeam.Name),
		AwayTeam:    strings.TrimSpace(item.AwayTeam.Name),
		UTCDate:     strings.TrimSpace(item.UTCDate),
		Status:      strings.TrimSpace(item.Status),
		Competition: strings.TrimSpace(item.Competition.Name),
	}
	if item.Score.FullTime.Home != nil && item.Score.FullTime.Away != nil {
		home, away := *item.Score.FullTime.Home, *item.Score.FullTime.Away
		out.HomeScore = &home
		out.AwayScore = &away
	}
	return out.WithDefaults()
}

func abbreviateBody(raw []byte) string {
	const limit = 200
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
