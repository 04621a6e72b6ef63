package tools

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type GetMETARHandler struct {
	Client Fetcher
}

func (h *GetMETARHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	ids, err := parseStationIDs(args["ids"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := formatArg(args, "json", "json", "raw", "geojson", "csv", "xml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("format", format)
	if hours, ok := args["hours"].(float64); ok && hours > 0 {
		params.Set("hours", strconv.FormatFloat(hours, 'f', -1, 64))
	}

	resp, err := h.Client.Get(ctx, "metar", params)
	if err != nil {
		return upstreamErrorResult(err), nil
	}
	return mcp.NewToolResultText(resp.Text()), nil
}
