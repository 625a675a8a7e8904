package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string
	Port        int
	Environment string
	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`
	// error reporting
	SentryEnabled bool `toml:"sentry_enabled"`
	// coaching backend
	CoachAPIURL string `toml:"coach_api_url"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort int    `toml:"redis_port"`
	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort int    `toml:"prometheus_metrics_port"`
	// chat
	ChatSessionTTLMinutes   int `toml:"chat_session_ttl_minutes"`
	ChatSendRateLimitPerMin int `toml:"chat_send_rate_limit_per_min"`
	// guidance cache
	GuidanceCacheSizeMB     int `toml:"guidance_cache_size_mb"`
	GuidanceCacheTTLSeconds int `toml:"guidance_cache_ttl_seconds"`
	// checkout polling
	CheckoutPollIntervalSeconds int `toml:"checkout_poll_interval_seconds"`
	CheckoutPollMaxAttempts     int `toml:"checkout_poll_max_attempts"`
	CheckoutRateLimitPerMin     int `toml:"checkout_rate_limit_per_min"`
	// ui language
	DefaultLanguage string `toml:"default_language"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s missing in %s", env, path)
	}

	cfg.Environment = env
	return cfg, nil
}
