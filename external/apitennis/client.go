package apitennis

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/riskibarqy/tennis-tracker/internal/platform/resilience"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
	"github.com/sony/gobreaker"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultBaseURL      = "https://api.api-tennis.com/tennis/"
	defaultTimeout      = 15 * time.Second
	defaultRetryBackoff = time.Second
	maxResponseBodySize = 8 << 20
)

var (
	apiKeyParamRegex      = regexp.MustCompile(`APIkey=[^&\s"']+`)
	errAPITennisTransient = crerr.New("api-tennis transient failure")
)

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client performs GET requests against api-tennis. Identical concurrent
// requests share one upstream call.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	logger     *logging.Logger
	breaker    *gobreaker.CircuitBreaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "tennis-tracker",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		}
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    backoff,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker("api-tennis", cfg.CircuitBreaker, isCircuitFailure, logger),
	}
}

// Fetch calls the given api-tennis method and returns the raw response body.
// Empty parameter values are omitted from the query.
func (c *Client) Fetch(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, crerr.New("api-tennis method is required")
	}

	keys := sortedParamKeys(params)
	key := requestKey(method, keys, params)

	// The shared call outlives any single caller: one caller giving up must
	// not fail the others waiting on the same key.
	ch := c.flight.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.callBudget())
		defer cancel()
		return c.execute(callCtx, method, keys, params)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	raw, ok := res.Val.([]byte)
	if !ok {
		return nil, crerr.Newf("unexpected response payload type %T", out)
	}
	return append([]byte(nil), raw...), nil
}

// callBudget bounds a shared call by every attempt and backoff it may take.
func (c *Client) callBudget() time.Duration {
	budget := time.Duration(c.maxRetries+1) * c.timeout
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		budget += time.Duration(attempt) * c.backoff
	}
	return budget
}

func (c *Client) execute(ctx context.Context, method string, keys []string, params map[string]string) ([]byte, error) {
	if c.breaker == nil {
		return c.executeRequest(ctx, method, keys, params)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.executeRequest(ctx, method, keys, params)
	})
	if resilience.IsOpen(err) {
		c.logger.WarnContext(ctx, "api-tennis circuit breaker rejected request", "method", method, "state", c.breaker.State())
		return nil, fmt.Errorf("%w: tennis data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return nil, err
	}
	return out.([]byte), nil
}

func (c *Client) executeRequest(ctx context.Context, method string, keys []string, params map[string]string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, retry, err := c.doOnce(ctx, method, keys, params)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !retry || attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "api-tennis request failed",
		"method", method,
		"request", requestKey(method, keys, params),
		"error", lastErr,
	)
	return nil, lastErr
}

// doOnce performs a single attempt and reports whether a failure may be retried.
func (c *Client) doOnce(ctx context.Context, method string, keys []string, params map[string]string) ([]byte, bool, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	query := req.URI().QueryArgs()
	query.Add("method", method)
	for _, key := range keys {
		query.Add(key, params[key])
	}
	query.Add("APIkey", c.apiKey)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}
		return nil, true, fmt.Errorf("%w: send request: %s", errAPITennisTransient, c.sanitize(err.Error()))
	}

	status := resp.StatusCode()
	body := resp.Body()
	switch {
	case status >= 200 && status < 300:
		return append([]byte(nil), body...), false, nil
	case isRetryableStatus(status):
		return nil, true, fmt.Errorf("%w: provider status=%d body=%s", errAPITennisTransient, status, c.sanitize(abbreviateBody(body)))
	default:
		return nil, false, crerr.Newf("provider status=%d body=%s", status, c.sanitize(abbreviateBody(body)))
	}
}

func (c *Client) sanitize(value string) string {
	return sanitizeSensitiveText(value, c.apiKey)
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "APIkey=REDACTED")
}

func sortedParamKeys(params map[string]string) []string {
	keys := make([]string, 0, len(params))
	for key, value := range params {
		if strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// requestKey identifies a call for de-duplication and logging. It never
// contains the API key.
func requestKey(method string, keys []string, params map[string]string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(method)
	for i, key := range keys {
		if i == 0 {
			_ = buf.WriteByte('?')
		} else {
			_ = buf.WriteByte('&')
		}
		_, _ = buf.WriteString(key)
		_ = buf.WriteByte('=')
		_, _ = buf.WriteString(params[key])
	}
	return buf.String()
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func isCircuitFailure(err error) bool {
	return stderrors.Is(err, errAPITennisTransient)
}

func abbreviateBody(body []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
