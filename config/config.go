package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Auth modes for MaxBotConfig.AuthMode.
const (
	AuthModeQuery  = "query"
	AuthModeHeader = "header"
)

// ErrMissingToken is returned by Load when no bot token is configured.
var ErrMissingToken = errors.New("max_bot.access_token is required (or MAX_BOT_TOKEN)")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Max Bot API
	MaxBot MaxBotConfig

	// Identity service
	IdentityCache IdentityCacheConfig
	RateLimit     RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MaxBotConfig struct {
	AccessToken     string
	BaseURL         string
	HTTPSOnly       bool
	StrictTransport bool          // fail instead of falling back when TLS setup fails
	Timeout         time.Duration // 0 = no client deadline
	AuthMode        string        // "query" or "header"
}

type IdentityCacheConfig struct {
	TTL time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = v.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Max Bot API
	cfg.MaxBot.AccessToken = v.GetString("max_bot.access_token")
	if token := v.GetString("max_bot_token"); token != "" {
		cfg.MaxBot.AccessToken = token
	}
	cfg.MaxBot.BaseURL = v.GetString("max_bot.base_url")
	cfg.MaxBot.HTTPSOnly = v.GetBool("max_bot.https_only")
	cfg.MaxBot.StrictTransport = v.GetBool("max_bot.strict_transport")
	cfg.MaxBot.Timeout = v.GetDuration("max_bot.timeout")
	cfg.MaxBot.AuthMode = strings.ToLower(v.GetString("max_bot.auth_mode"))

	// Identity service
	cfg.IdentityCache.TTL = v.GetDuration("identity_cache.ttl")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.trusted_proxies", []string{})
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("max_bot.base_url", "https://botapi.max.ru")
	v.SetDefault("max_bot.https_only", true)
	v.SetDefault("max_bot.strict_transport", false)
	v.SetDefault("max_bot.timeout", "30s")
	v.SetDefault("max_bot.auth_mode", AuthModeQuery)

	v.SetDefault("identity_cache.ttl", "1m")
	v.SetDefault("rate_limit.requests_per_min", 60)
}

func validate(cfg *Config) error {
	if cfg.MaxBot.AccessToken == "" {
		return ErrMissingToken
	}
	switch cfg.MaxBot.AuthMode {
	case AuthModeQuery, AuthModeHeader:
	default:
		return fmt.Errorf("max_bot.auth_mode: unsupported value %q", cfg.MaxBot.AuthMode)
	}
	if cfg.MaxBot.Timeout < 0 {
		return fmt.Errorf("max_bot.timeout must not be negative")
	}
	if cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive")
	}
	return nil
}
