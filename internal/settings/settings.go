// Package settings resolves process-level settings from an optional dotenv
// file and the environment. Environment variables win over the file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyNRELAPIKey  = "NREL_API_KEY"
	KeyLogLevel    = "GREENSTEEL_LOG_LEVEL"
	KeyMetricsFile = "GREENSTEEL_METRICS_FILE"

	DefaultEnvFile = ".env"
)

// Settings never carries secret values; only whether they are present.
type Settings struct {
	EnvFile     string // dotenv file actually read, empty if none
	NRELKeySet  bool
	LogLevel    string
	MetricsFile string
}

// Load reads envFile (or ./.env when envFile is empty and the file exists)
// and overlays the process environment.
func Load(envFile string) (Settings, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.AutomaticEnv()

	path := envFile
	if path == "" {
		if _, err := os.Stat(DefaultEnvFile); err == nil {
			path = DefaultEnvFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if errors.As(err, &nf) || os.IsNotExist(err) {
				return Settings{}, fmt.Errorf("env file %s: not found", path)
			}
			return Settings{}, fmt.Errorf("env file %s: %w", path, err)
		}
	}

	return Settings{
		EnvFile:     path,
		NRELKeySet:  strings.TrimSpace(v.GetString(KeyNRELAPIKey)) != "",
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		MetricsFile: strings.TrimSpace(v.GetString(KeyMetricsFile)),
	}, nil
}
