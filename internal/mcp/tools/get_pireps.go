package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultPIREPDistance = 200
	defaultPIREPAgeHours = 2.0
)

type GetPIREPsHandler struct {
	Client Fetcher
}

func (h *GetPIREPsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	format, err := formatArg(args, "json", "json", "raw", "geojson", "xml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := url.Values{}
	params.Set("format", format)

	// Without a center station the API returns recent PIREPs nationwide.
	if raw, present := args["id"]; present {
		ids, err := parseStationIDs(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(ids) != 1 {
			return mcp.NewToolResultError("id must be a single center station identifier"), nil
		}
		params.Set("id", ids[0])
	}

	distance := defaultPIREPDistance
	if v, ok := args["distance"].(float64); ok && v > 0 {
		distance = int(v)
	}
	params.Set("distance", strconv.Itoa(distance))

	age := defaultPIREPAgeHours
	if v, ok := args["age"].(float64); ok && v > 0 {
		age = v
	}
	params.Set("age", strconv.FormatFloat(age, 'f', -1, 64))

	resp, err := h.Client.Get(ctx, "pirep", params)
	if err != nil {
		return upstreamErrorResult(err), nil
	}
	return mcp.NewToolResultText(resp.Text()), nil
}
