package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/epicorifa/rifa-api/internal/ratelimit"
)

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Postgres  *PostgresConfig  `mapstructure:"postgres"`
	Redis     *RedisConfig     `mapstructure:"redis"`
	RateLimit *RateLimitConfig `mapstructure:"rate_limit"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
	SecureCookies      bool   `mapstructure:"secure_cookies"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// RateLimitConfig carries one budget per route class. Auth routes are the
// credential-guessing surface and get the strictest budget.
type RateLimitConfig struct {
	Auth        RouteClassLimit `mapstructure:"auth"`
	Admin       RouteClassLimit `mapstructure:"admin"`
	Integration RouteClassLimit `mapstructure:"integration"`
}

type RouteClassLimit struct {
	Points     int `mapstructure:"points"`
	WindowSecs int `mapstructure:"window_secs"`
	BlockSecs  int `mapstructure:"block_secs"`
}

func (l RouteClassLimit) ToLimiterConfig(prefix string) ratelimit.Config {
	return ratelimit.Config{
		Prefix: prefix,
		Points: l.Points,
		Window: time.Duration(l.WindowSecs) * time.Second,
		Block:  time.Duration(l.BlockSecs) * time.Second,
	}
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if conf.API == nil || conf.API.JWTSigningKey == "" {
		return nil, fmt.Errorf("config: api.jwt_signing_key is required")
	}

	return &conf, nil
}
