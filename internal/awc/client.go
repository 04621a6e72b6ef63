// Package awc is a minimal client for the aviationweather.gov data API.
// Every call maps to exactly one HTTP GET; there is no caching and no retry.
package awc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/flightwx/aviation-weather-mcp/internal/logging"
)

// maxDetailBytes bounds how much of an upstream error body is carried back
// to the caller.
const maxDetailBytes = 300

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client issues GET requests against the aviationweather.gov data API. The
// zero value is not usable; construct with NewClient. Safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        logging.Logger
}

func NewClient(cfg Config, log logging.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// Response holds a single upstream reply. NoData marks a 204, which the API
// uses when the query matched nothing.
type Response struct {
	NoData      bool
	ContentType string
	Body        []byte
}

// Text renders the response for a tool result: JSON bodies re-indented,
// everything else whitespace-trimmed.
func (r *Response) Text() string {
	if r.NoData {
		return "No data available for this request."
	}
	if strings.Contains(r.ContentType, "json") {
		var buf bytes.Buffer
		if err := json.Indent(&buf, r.Body, "", "  "); err == nil {
			return buf.String()
		}
	}
	return strings.TrimSpace(string(r.Body))
}

// Get issues one GET to {base}/{endpoint} with the given query parameters and
// classifies the outcome per the package error types.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	c.log.Debug("upstream request", "endpoint", endpoint, "query", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		uerr := &UnavailableError{Endpoint: endpoint, Timeout: isTimeout(err), Err: err}
		c.log.Error(err, "upstream request failed", "endpoint", endpoint, "timeout", uerr.Timeout)
		return nil, uerr
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return &Response{NoData: true}, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Endpoint: endpoint, Timeout: isTimeout(err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &RejectedError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Detail:     truncate(strings.TrimSpace(string(body)), maxDetailBytes),
		}
		c.log.Info("upstream rejected request", "endpoint", endpoint, "status", resp.StatusCode)
		return nil, rerr
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "json") && !gjson.ValidBytes(body) {
		return nil, &PayloadError{
			Endpoint:    endpoint,
			ContentType: contentType,
			Err:         errors.New("body is not valid JSON"),
		}
	}

	return &Response{ContentType: contentType, Body: body}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
