package tools

import (
	"context"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

type GetTAFHandler struct {
	Client Fetcher
}

func (h *GetTAFHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	resp, err := h.Client.Get(ctx, "taf", params)
	if err != nil {
		return upstreamErrorResult(err), nil
	}
	return mcp.NewToolResultText(resp.Text()), nil
}
