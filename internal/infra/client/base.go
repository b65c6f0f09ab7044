package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/errs"
	"petshop-checkout/internal/pkg/reqctx"

	"github.com/sony/gobreaker/v2"
)

const HeaderRequestID = "X-Request-ID"

var (
	ErrServerStatus   = errs.New("upstream returned a server error")
	errMissingOrderID = errs.New("order service response has no order id")
)

// Client is the shared transport for one storefront collaborator. Transport
// errors and 5xx answers count against its circuit breaker; 4xx answers are
// business outcomes and do not.
type Client struct {
	Name    string
	BaseURL *url.URL
	HTTP    *http.Client

	breaker *gobreaker.CircuitBreaker[*http.Response]
}

func NewClient(name, baseURL string, httpClient *http.Client, cfg config.UpstreamConfig) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid %s base url %q", name, baseURL)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed",
				"upstream", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	return &Client{Name: name, BaseURL: u, HTTP: httpClient, breaker: breaker}, nil
}

func NewHTTPClient(cfg config.UpstreamConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Do sends body as JSON and forwards the caller's bearer token and request id.
// The response is returned for every status; the caller owns closing it.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to encode %s request", c.Name)
		}
		reader = bytes.NewReader(b)
	}

	u := c.BaseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to build %s request", c.Name)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := reqctx.Bearer(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := reqctx.RequestID(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		resp, err := c.HTTP.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, ErrServerStatus
		}
		return resp, nil
	})
	if err != nil && !errors.Is(err, ErrServerStatus) {
		return nil, errs.Wrapf(err, "%s %s %s", c.Name, method, path)
	}
	return resp, nil
}

// decodeJSON reads the body into v. An empty body reports false.
func decodeJSON(resp *http.Response, v any) (bool, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, errs.Wrap(err, "failed to read response body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, errs.Wrap(err, "failed to decode response body")
	}
	return true, nil
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// serverMessage extracts a human readable message from an error response.
func serverMessage(resp *http.Response) string {
	var body errorBody
	if ok, err := decodeJSON(resp, &body); err != nil || !ok {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		slog.Debug("failed to close response body", "error", err)
	}
}

func unexpectedStatus(name string, resp *http.Response) error {
	return errs.Newf("%s: unexpected status %d", name, resp.StatusCode)
}
