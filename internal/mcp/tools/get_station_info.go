package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/flightwx/aviation-weather-mcp/internal/awc"
)

type GetStationInfoHandler struct {
	Client Fetcher
}

func (h *GetStationInfoHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	ids, err := parseStationIDs(args["ids"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := formatArg(args, "json", "json", "geojson", "xml")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("format", format)

	resp, err := h.Client.Get(ctx, "stationinfo", params)
	if err != nil {
		return upstreamErrorResult(err), nil
	}

	if format == "json" && !resp.NoData {
		if summary := stationSummary(resp); summary != "" {
			return mcp.NewToolResultText(summary + "\n\n" + resp.Text()), nil
		}
	}
	return mcp.NewToolResultText(resp.Text()), nil
}

// stationSummary extracts one line per station from the stationinfo JSON
// payload. Returns "" when the payload has no recognizable station records.
func stationSummary(resp *awc.Response) string {
	parsed := gjson.ParseBytes(resp.Body)
	if !parsed.IsArray() {
		return ""
	}

	var lines []string
	for _, station := range parsed.Array() {
		icao := station.Get("icaoId").String()
		if icao == "" {
			continue
		}
		lat := station.Get("lat")
		lon := station.Get("lon")
		elev := station.Get("elev")
		if !lat.Exists() || !lon.Exists() {
			continue
		}
		line := fmt.Sprintf("%s: %s (%.4f, %.4f)", icao, station.Get("site").String(), lat.Float(), lon.Float())
		if elev.Exists() {
			line += fmt.Sprintf(", elevation %.0f m", elev.Float())
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
