package tools

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/flightwx/aviation-weather-mcp/internal/awc"
)

// Fetcher is the single upstream operation the handlers need. Satisfied by
// *awc.Client.
type Fetcher interface {
	Get(ctx context.Context, endpoint string, params url.Values) (*awc.Response, error)
}

// upstreamErrorResult maps awc error types onto tool-call failures so that a
// caller can tell "try again later" from "fix your parameters".
func upstreamErrorResult(err error) *mcp.CallToolResult {
	var unavailable *awc.UnavailableError
	var rejected *awc.RejectedError
	var payload *awc.PayloadError

	switch {
	case errors.As(err, &unavailable):
		if unavailable.Timeout {
			return mcp.NewToolResultError("Error: request to aviationweather.gov timed out. Try again.")
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error: aviationweather.gov is unreachable: %v", unavailable.Err))
	case errors.As(err, &rejected):
		if rejected.BadRequest() {
			return mcp.NewToolResultError(fmt.Sprintf("Error: bad request - check your parameters. Details: %s", rejected.Detail))
		}
		return mcp.NewToolResultError(fmt.Sprintf("Error: API returned status %d. %s", rejected.StatusCode, rejected.Detail))
	case errors.As(err, &payload):
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", payload))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err))
	}
}
