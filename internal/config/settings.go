package config

import (
	_ "embed"
	"encoding/json"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds everything the submitter needs outside the per-indicator
// attributes: endpoint, credentials, and transport tuning.
type Config struct {
	Graph struct {
		Root          string `json:"root"`
		APIVersion    string `json:"api_version"`
		TargetProduct string `json:"target_product"`
	} `json:"graph"`

	Auth struct {
		TenantID      string `json:"tenant_id"`
		ClientID      string `json:"client_id"`
		ClientSecret  string `json:"-"`
		AccessToken   string `json:"-"`
		TokenEndpoint string `json:"token_endpoint,omitempty"`
	} `json:"auth"`

	HTTP struct {
		TimeoutSeconds uint32 `json:"timeout_seconds"`
		Socks5Proxy    string `json:"socks5_proxy,omitempty"`
	} `json:"http"`
}

const settingsFilePath = "data/settings.json"

var (
	//go:embed default_settings.json
	defaultConfig []byte

	configValue atomic.Value
)

func init() {
	var cfg Config
	if err := json.Unmarshal(defaultConfig, &cfg); err == nil {
		configValue.Store(cfg)
	} else {
		configValue.Store(Config{})
	}
}

// ReadSettings loads the optional settings file over the embedded defaults
// and then applies environment overrides. Secrets only ever come from the
// environment.
func ReadSettings() {
	cfg := GetConfig()

	data, err := os.ReadFile(settingsFilePath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			log.Error("Error unmarshalling settings file", "error", err)
		} else {
			log.Debug("Settings file loaded successfully")
		}
	case os.IsNotExist(err):
		log.Debug("No settings file found, using defaults")
	default:
		log.Error("Error reading settings file", "error", err)
	}

	applyEnvOverrides(&cfg)
	configValue.Store(cfg)
}

func applyEnvOverrides(cfg *Config) {
	setFromEnv(&cfg.Graph.Root, "GRAPH_ROOT")
	setFromEnv(&cfg.Graph.APIVersion, "GRAPH_API_VERSION")
	setFromEnv(&cfg.Graph.TargetProduct, "GRAPH_TARGET_PRODUCT")

	setFromEnv(&cfg.Auth.TenantID, "GRAPH_TENANT_ID")
	setFromEnv(&cfg.Auth.ClientID, "GRAPH_CLIENT_ID")
	setFromEnv(&cfg.Auth.ClientSecret, "GRAPH_CLIENT_SECRET")
	setFromEnv(&cfg.Auth.AccessToken, "GRAPH_ACCESS_TOKEN")
	setFromEnv(&cfg.Auth.TokenEndpoint, "GRAPH_TOKEN_ENDPOINT")

	setFromEnv(&cfg.HTTP.Socks5Proxy, "SOCKS5_PROXY")

	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			log.Warn("Invalid timeout override", "env", "HTTP_TIMEOUT_SECONDS", "value", raw)
		} else {
			cfg.HTTP.TimeoutSeconds = uint32(seconds)
		}
	}
}

func setFromEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

// GetConfig returns the current configuration snapshot.
func GetConfig() Config {
	return configValue.Load().(Config)
}

// SetConfig replaces the configuration snapshot. Primarily for tests.
func SetConfig(cfg Config) {
	configValue.Store(cfg)
}

// HTTPTimeout converts the configured timeout into a duration. Zero means
// no client-imposed timeout.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
