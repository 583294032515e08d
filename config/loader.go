package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables the loader binds, e.g.
// PARSE_SERVER_URL, PARSE_APPLICATION_ID.
const envPrefix = "PARSE"

// settingsKeys are the viper keys the loader binds to environment variables.
var settingsKeys = []string{
	"server_url",
	"application_id",
	"rest_api_key",
	"session_token",
	"debug",
	"timeout",
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads Settings from a YAML config file, a .env file, and PARSE_*
// environment variables. Environment variables take precedence over files.
// Missing files are not an error; missing required fields are reported by
// Validate on the returned Settings, which Load already calls.
func Load(opts ...LoaderOption) (Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst([]string{
			"./parse.yml",
			"./config/parse.yml",
			"../config/parse.yml",
		})
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst([]string{".env", "../.env"})
	}

	// .env first so the env binding below sees its variables.
	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load .env file %s: %v\n", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range settingsKeys {
		_ = v.BindEnv(key)
	}

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config file %s: %w", lc.ConfigFile, err)
		}
	}

	var set Settings
	if err := v.Unmarshal(&set); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	set.ApplyDefaults()
	if err := set.Validate(); err != nil {
		return Settings{}, err
	}
	return set, nil
}

// findFirst returns the first path that exists, or "".
func findFirst(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
