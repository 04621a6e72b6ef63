package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/flightwx/aviation-weather-mcp/internal/awc"
	"github.com/flightwx/aviation-weather-mcp/internal/config"
	"github.com/flightwx/aviation-weather-mcp/internal/logging"
	"github.com/flightwx/aviation-weather-mcp/internal/mcp/tools"
)

const userAgent = "aviation-weather-mcp/1.0"

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.ForLevel(config.LogLevel()))

	client := awc.NewClient(awc.Config{
		BaseURL:   config.UpstreamBaseURL(),
		Timeout:   config.UpstreamTimeout(),
		UserAgent: userAgent,
	}, baseLogger.WithName("awc"))

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"get_metar":        &tools.GetMETARHandler{Client: client},
			"get_taf":          &tools.GetTAFHandler{Client: client},
			"get_pireps":       &tools.GetPIREPsHandler{Client: client},
			"get_airsigmet":    &tools.GetAirsigmetHandler{Client: client},
			"get_station_info": &tools.GetStationInfoHandler{Client: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
	}
}
