package awc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/flightwx/aviation-weather-mcp/internal/logging"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	return NewClient(Config{
		BaseURL:   baseURL,
		Timeout:   timeout,
		UserAgent: "avwx-test/1.0",
	}, logging.New(logr.Discard()))
}

func TestGetIssuesSingleRequestWithAllIDs(t *testing.T) {
	var requests atomic.Int32
	var gotIDs, gotUA string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotIDs = r.URL.Query().Get("ids")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"icaoId":"KORD"},{"icaoId":"KJFK"}]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5*time.Second)
	params := url.Values{}
	params.Set("ids", "KORD,KJFK")
	params.Set("format", "json")

	resp, err := client.Get(context.Background(), "metar", params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := requests.Load(); n != 1 {
		t.Fatalf("expected exactly 1 upstream request, got %d", n)
	}
	if gotIDs != "KORD,KJFK" {
		t.Fatalf("expected ids=KORD,KJFK, got %q", gotIDs)
	}
	if gotUA != "avwx-test/1.0" {
		t.Fatalf("expected user agent header, got %q", gotUA)
	}
	if !strings.Contains(resp.Text(), "KORD") || !strings.Contains(resp.Text(), "KJFK") {
		t.Fatalf("response text missing stations: %s", resp.Text())
	}
}

func TestGetTimeoutReturnsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := client.Get(context.Background(), "metar", url.Values{})
	elapsed := time.Since(start)

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if !unavailable.Timeout {
		t.Fatalf("expected timeout flag set: %v", unavailable)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("request did not fail within timeout bound, took %s", elapsed)
	}
}

func TestGetConnectionFailureReturnsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := newTestClient(srv.URL, time.Second)
	_, err := client.Get(context.Background(), "taf", url.Values{})

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if unavailable.Timeout {
		t.Fatalf("connection refusal should not be flagged as timeout")
	}
}

func TestGetNonOKStatusReturnsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream maintenance"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	_, err := client.Get(context.Background(), "pirep", url.Values{})

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rejected.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rejected.StatusCode)
	}
	if !strings.Contains(rejected.Detail, "upstream maintenance") {
		t.Fatalf("expected upstream body in detail, got %q", rejected.Detail)
	}
}

func TestGetBadRequestCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid parameter: distance"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	_, err := client.Get(context.Background(), "pirep", url.Values{})

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if !rejected.BadRequest() {
		t.Fatalf("expected BadRequest() true for 400")
	}
	if !strings.Contains(rejected.Detail, "distance") {
		t.Fatalf("expected detail passed through, got %q", rejected.Detail)
	}
}

func TestGetRejectionDetailTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(strings.Repeat("x", 2000)))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	_, err := client.Get(context.Background(), "metar", url.Values{})

	var rejected *RejectedError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if len(rejected.Detail) > maxDetailBytes {
		t.Fatalf("detail not truncated: %d bytes", len(rejected.Detail))
	}
}

func TestGetNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	resp, err := client.Get(context.Background(), "taf", url.Values{})
	if err != nil {
		t.Fatalf("204 should not be an error: %v", err)
	}
	if !resp.NoData {
		t.Fatalf("expected NoData for 204")
	}
	if !strings.Contains(resp.Text(), "No data available") {
		t.Fatalf("unexpected no-data text: %q", resp.Text())
	}
}

func TestGetInvalidJSONPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"truncated": `))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, time.Second)
	_, err := client.Get(context.Background(), "metar", url.Values{})

	var payload *PayloadError
	if !errors.As(err, &payload) {
		t.Fatalf("expected PayloadError, got %v", err)
	}
}

func TestResponseTextIndentsJSON(t *testing.T) {
	resp := &Response{
		ContentType: "application/json",
		Body:        []byte(`[{"icaoId":"KJFK","temp":22}]`),
	}
	text := resp.Text()
	if !strings.Contains(text, "\n  ") {
		t.Fatalf("expected indented JSON, got %q", text)
	}
	if !strings.Contains(text, "KJFK") {
		t.Fatalf("expected station in output, got %q", text)
	}
}

func TestResponseTextTrimsRaw(t *testing.T) {
	resp := &Response{
		ContentType: "text/plain",
		Body:        []byte("\nKJFK 092251Z 22012KT 10SM FEW250 22/10 A3012\n\n"),
	}
	if got := resp.Text(); got != "KJFK 092251Z 22012KT 10SM FEW250 22/10 A3012" {
		t.Fatalf("unexpected trimmed text: %q", got)
	}
}

func TestGetCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "metar", url.Values{})
	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError on cancelled context, got %v", err)
	}
}
