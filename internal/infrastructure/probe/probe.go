// Package probe checks connectivity with the external commercial backend.
//
// Checks never fail the caller: transport errors, timeouts and non-2xx
// answers are captured in the Result.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"comercial_moveis/internal/infrastructure/metrics"
)

const HealthPath = "/health"

// DefaultEndpoints are checked when no explicit list is given.
var DefaultEndpoints = []string{HealthPath, "/api/v1/docs"}

const maxBodyBytes = 64 << 10

type Result struct {
	Endpoint   string    `json:"endpoint"`
	Success    bool      `json:"success"`
	Data       any       `json:"data,omitempty"`
	Error      string    `json:"error,omitempty"`
	StatusCode int       `json:"status_code,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms"`
}

// Client probes a backend base URL with a fixed set of headers.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, headers map[string]string) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	h := make(map[string]string, len(headers)+1)
	h["Accept"] = "application/json"
	for k, v := range headers {
		h[k] = v
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    h,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) CheckHealth(ctx context.Context) Result {
	return c.check(ctx, HealthPath)
}

// CheckEndpoints runs the checks one after another. An empty list means
// DefaultEndpoints.
func (c *Client) CheckEndpoints(ctx context.Context, paths []string) []Result {
	if len(paths) == 0 {
		paths = DefaultEndpoints
	}
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, c.check(ctx, p))
	}
	return results
}

func (c *Client) check(ctx context.Context, path string) Result {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	start := time.Now()
	res := Result{Endpoint: path, Timestamp: start.UTC()}

	res = c.do(ctx, res)
	res.DurationMS = time.Since(start).Milliseconds()

	metrics.ProbeChecksTotal.WithLabelValues(path, metrics.ProbeOutcome(res.Success)).Inc()
	if res.Success {
		log.Printf("[probe][client] check ok endpoint=%s status=%d duration_ms=%d", path, res.StatusCode, res.DurationMS)
	} else {
		log.Printf("[probe][client] check failed endpoint=%s status=%d err=%s", path, res.StatusCode, res.Error)
	}
	return res
}

func (c *Client) do(ctx context.Context, res Result) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+res.Endpoint, nil)
	if err != nil {
		res.Error = fmt.Sprintf("creating request: %v", err)
		return res
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.Error = fmt.Sprintf("executing request: %v", err)
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		res.Error = fmt.Sprintf("reading response: %v", err)
		return res
	}
	res.Data = decodeBody(body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Error = fmt.Sprintf("HTTP %d from %s", resp.StatusCode, res.Endpoint)
		return res
	}
	res.Success = true
	return res
}

func decodeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
