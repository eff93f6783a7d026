package serviceclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Observer receives the outcome of every call.
type Observer interface {
	ObserveCall(service string, status int, elapsed time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithObserver reports every call to o.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// Client is the shared HTTP transport for one named collaborator service.
// Calls never return transport errors; they surface as StatusUnreachable.
// The configured retry policy applies to idempotent methods only; POST is
// sent exactly once.
type Client struct {
	name     string
	http     *resty.Client
	once     *resty.Client
	log      *slog.Logger
	observer Observer
}

// New creates a Client for the named service.
func New(name string, cfg Config, logger *slog.Logger, opts ...Option) *Client {
	cfg = cfg.withDefaults()

	c := &Client{
		name: name,
		http: newResty(cfg, cfg.RetryCount),
		once: newResty(cfg, 0),
		log:  logger.With("client", name),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newResty(cfg Config, retries int) *resty.Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if retries > 0 {
		rc.SetRetryCount(retries).
			SetRetryWaitTime(cfg.RetryWait).
			SetRetryMaxWaitTime(4 * cfg.RetryWait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
			})
	}
	if cfg.AuthToken != "" {
		rc.SetAuthToken(cfg.AuthToken)
	}
	return rc
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) Result {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) Result {
	return c.do(ctx, http.MethodPost, path, query, body)
}

// Put issues a PUT request with a JSON body. A nil body sends none.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body any) Result {
	return c.do(ctx, http.MethodPut, path, query, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) Result {
	rc := c.http
	if method == http.MethodPost {
		rc = c.once
	}
	req := rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	elapsed := time.Since(start)

	res := Result{Status: StatusUnreachable}
	if err != nil {
		c.log.WarnContext(ctx, "service unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Duration("duration", elapsed),
		)
	} else {
		res = Result{Status: resp.StatusCode(), Payload: resp.Body()}
		c.log.DebugContext(ctx, "service call",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", res.Status),
			slog.Duration("duration", elapsed),
		)
	}

	if c.observer != nil {
		c.observer.ObserveCall(c.name, res.Status, elapsed)
	}
	return res
}
