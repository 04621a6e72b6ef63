package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Init wires viper to the environment and the root command's persistent
// flags. Flag names use dashes; each is bound to its underscore config key so
// that flags, env vars and defaults resolve through the same accessors.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		bindFlag(root, KeyHost, "host")
		bindFlag(root, KeyPort, "port")
		bindFlag(root, KeyUpstreamBaseURL, "upstream-url")
		bindFlag(root, KeyUpstreamTimeout, "upstream-timeout")
		bindFlag(root, KeyLogLevel, "log-level")
	}
	setDefaults()
}

func bindFlag(root *cobra.Command, key, flag string) {
	if f := root.PersistentFlags().Lookup(flag); f != nil {
		_ = viper.BindPFlag(key, f)
	}
}

func setDefaults() {
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyUpstreamBaseURL, "https://aviationweather.gov/api/data")
	viper.SetDefault(KeyUpstreamTimeout, 15)
	viper.SetDefault(KeyLogLevel, "info")
}

func Host() string            { return viper.GetString(KeyHost) }
func Port() int               { return viper.GetInt(KeyPort) }
func UpstreamBaseURL() string { return viper.GetString(KeyUpstreamBaseURL) }
func LogLevel() string        { return viper.GetString(KeyLogLevel) }

func UpstreamTimeout() time.Duration {
	return time.Duration(viper.GetInt(KeyUpstreamTimeout)) * time.Second
}
