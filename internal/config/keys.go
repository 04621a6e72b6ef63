package config

const (
	KeyHost            = "host"
	KeyPort            = "port"
	KeyUpstreamBaseURL = "upstream_base_url"
	KeyUpstreamTimeout = "upstream_timeout_seconds"
	KeyLogLevel        = "log_level"
)
