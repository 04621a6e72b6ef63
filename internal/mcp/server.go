package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "aviation-weather-mcp"
	serverVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"get_metar": mcp.NewTool("get_metar",
			mcp.WithDescription("Fetch current METAR observations for one or more airports. JSON format includes decoded fields such as temperature, dewpoint, wind, visibility, clouds, altimeter, flight category, and the raw observation text."),
			mcp.WithTitleAnnotation("Get METAR Observations"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("ids",
				mcp.Required(),
				mcp.Description("ICAO station identifiers, comma-separated (e.g. 'KTUS' or 'KORD,KJFK,KLAX')"),
			),
			mcp.WithNumber("hours",
				mcp.Description("Hours of history to retrieve (e.g. 2 for the last 2 hours). Omit for the latest observation only."),
			),
			mcp.WithString("format",
				mcp.Description("Output format (default json, with decoded fields)"),
				mcp.Enum("json", "raw", "geojson", "csv", "xml"),
			),
		),
		"get_taf": mcp.NewTool("get_taf",
			mcp.WithDescription("Fetch the current TAF (Terminal Aerodrome Forecast) for one or more airports: a concise forecast of expected conditions within 5 statute miles of the field, typically covering 24-30 hours."),
			mcp.WithTitleAnnotation("Get Terminal Aerodrome Forecast"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("ids",
				mcp.Required(),
				mcp.Description("ICAO station identifiers, comma-separated (e.g. 'KTUS' or 'KORD,KJFK')"),
			),
			mcp.WithString("format",
				mcp.Description("Output format (default json, includes decoded forecast periods)"),
				mcp.Enum("json", "raw", "geojson", "csv", "xml"),
			),
		),
		"get_pireps": mcp.NewTool("get_pireps",
			mcp.WithDescription("Fetch Pilot Reports (PIREPs): pilot-submitted reports of actual in-flight conditions including turbulence, icing, cloud layers, and other hazards. Nationwide when no center station is given."),
			mcp.WithTitleAnnotation("Get Pilot Reports (PIREPs)"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("id",
				mcp.Description("Center station ICAO identifier to search around (e.g. 'KORD'). Omit for recent PIREPs across the US."),
			),
			mcp.WithNumber("distance",
				mcp.Description("Search radius in statute miles from the station (default 200)"),
			),
			mcp.WithNumber("age",
				mcp.Description("Maximum age of reports in hours (default 2)"),
			),
			mcp.WithString("format",
				mcp.Description("Output format (default json)"),
				mcp.Enum("json", "raw", "geojson", "xml"),
			),
		),
		"get_airsigmet": mcp.NewTool("get_airsigmet",
			mcp.WithDescription("Fetch current SIGMETs and AIRMETs: advisories of weather hazardous to aircraft, with hazard type, severity, affected area, altitude range, and valid times."),
			mcp.WithTitleAnnotation("Get SIGMETs and AIRMETs"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("hazard",
				mcp.Description("Filter by hazard type: conv (convection), turb (turbulence), ice (icing), ifr (IFR conditions), mtw (mountain wave), ash (volcanic ash). Omit for all current advisories."),
				mcp.Enum("conv", "turb", "ice", "ifr", "mtw", "ash"),
			),
			mcp.WithString("format",
				mcp.Description("Output format (default json)"),
				mcp.Enum("json", "raw", "geojson", "xml"),
			),
		),
		"get_station_info": mcp.NewTool("get_station_info",
			mcp.WithDescription("Look up weather station information by ICAO identifier: name, country, latitude, longitude, elevation, and available data types."),
			mcp.WithTitleAnnotation("Get Station Information"),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithDestructiveHintAnnotation(false),
			mcp.WithIdempotentHintAnnotation(true),
			mcp.WithOpenWorldHintAnnotation(true),
			mcp.WithString("ids",
				mcp.Required(),
				mcp.Description("ICAO station identifiers, comma-separated (e.g. 'KTUS,KORD')"),
			),
			mcp.WithString("format",
				mcp.Description("Output format (default json)"),
				mcp.Enum("json", "geojson", "xml"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
