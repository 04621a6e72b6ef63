package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

var validHazards = map[string]bool{
	"conv": true,
	"turb": true,
	"ice":  true,
	"ifr":  true,
	"mtw":  true,
	"ash":  true,
}

type GetAirsigmetHandler struct {
	Client Fetcher
}

func (h *GetAirsigmetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	format, err := formatArg(args, "json", "json", "raw", "geojson", "xml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := url.Values{}
	params.Set("format", format)

	if hazard, _ := args["hazard"].(string); hazard != "" {
		hazard = strings.ToLower(hazard)
		if !validHazards[hazard] {
			return mcp.NewToolResultError(fmt.Sprintf("invalid hazard %q: expected one of conv, turb, ice, ifr, mtw, ash", hazard)), nil
		}
		params.Set("hazard", hazard)
	}

	resp, err := h.Client.Get(ctx, "airsigmet", params)
	if err != nil {
		return upstreamErrorResult(err), nil
	}
	return mcp.NewToolResultText(resp.Text()), nil
}
