package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	viper.SetDefault("TRACE_MAX_POINTS", 2000)
	viper.SetDefault("TRACE_WORKERS", 3)
	viper.SetDefault("TRACE_CACHE_SIZE", 256)
	viper.SetDefault("DISTANCE_UNITS", "km")
	viper.SetDefault("LOG_LEVEL", "info")
}

// ReadConfig loads ./data/config.* on top of the defaults. environment variables override both.
// a missing config file is fine, every key has a default.
func ReadConfig() error {
	SetConfigDefaults()
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
