package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/cesargomez89/saavnsource/internal/constants"
)

// Response is the outcome of one GET. Err is set only for transport-level
// failures; a non-200 status is not an error here.
type Response struct {
	StatusCode int
	Body       []byte
	Err        error
}

// JSON returns a parsed view of the body. The result does not exist when the
// body is missing or not valid JSON.
func (r Response) JSON() gjson.Result {
	if len(r.Body) == 0 || !gjson.ValidBytes(r.Body) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(r.Body)
}

// Decode unmarshals the body into v.
func (r Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.Body, v)
}

// Requester performs a single GET and never retries.
type Requester interface {
	Get(ctx context.Context, url string, headers map[string]string) Response
}

// Observer receives one call per completed request.
type Observer interface {
	ObserveUpstream(statusCode int, err error, elapsed time.Duration)
}

// Client wraps an http.Client with optional request spacing.
type Client struct {
	httpClient *http.Client
	observer   Observer

	minRequestInterval time.Duration
	lastRequest        time.Time
	mu                 sync.Mutex
}

// NewClient creates a client. A nil httpClient gets a pooled default with the given timeout.
func NewClient(httpClient *http.Client, timeout, minRequestInterval time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		}
	}
	return &Client{
		httpClient:         httpClient,
		minRequestInterval: minRequestInterval,
	}
}

// WithObserver attaches o to the client and returns it.
func (c *Client) WithObserver(o Observer) *Client {
	c.observer = o
	return c
}

// Get issues one GET request and reads the whole body.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) Response {
	if err := c.wait(ctx); err != nil {
		return Response{Err: err}
	}

	start := time.Now()
	resp := c.do(ctx, url, headers)
	if c.observer != nil {
		c.observer.ObserveUpstream(resp.StatusCode, resp.Err, time.Since(start))
	}
	return resp
}

func (c *Client) do(ctx context.Context, url string, headers map[string]string) Response {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Response{Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxBodyBytes))
	if err != nil {
		return Response{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return Response{StatusCode: resp.StatusCode, Body: body}
}

// wait claims the next request slot, sleeping if the previous one was too recent.
func (c *Client) wait(ctx context.Context) error {
	if c.minRequestInterval <= 0 {
		return ctx.Err()
	}

	c.mu.Lock()
	now := time.Now()
	nextAllowed := c.lastRequest.Add(c.minRequestInterval)
	var waitTime time.Duration
	if now.Before(nextAllowed) {
		waitTime = nextAllowed.Sub(now)
		c.lastRequest = nextAllowed
	} else {
		c.lastRequest = now
	}
	c.mu.Unlock()

	if waitTime <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(waitTime)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ Requester = (*Client)(nil)
