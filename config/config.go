// Package config loads application configuration from environment variables
// and an optional yaml file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string `mapstructure:"server_host"`
	ServerPort string `mapstructure:"server_port"`

	// Database configuration
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_ssl_mode"`

	// Redis configuration (optional; caching and rate limiting degrade
	// gracefully without it)
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	// JWT configuration
	JWTSecret string `mapstructure:"jwt_secret"`

	// S3 image storage (optional)
	S3Bucket  string `mapstructure:"s3_bucket"`
	AWSRegion string `mapstructure:"aws_region"`

	// Logging
	LogLevel string `mapstructure:"log_level"`
	LogJSON  bool   `mapstructure:"log_json"`
}

// Load reads configuration from the optional file at path and from the
// environment. Environment variables win and use the APP_ prefix
// (APP_DB_HOST, APP_JWT_SECRET, ...).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_ssl_mode", "disable")
	v.SetDefault("redis_db", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", true)

	// Keys without defaults must still be registered for env-only values to
	// survive Unmarshal.
	for _, key := range []string{
		"db_user", "db_password", "db_name",
		"redis_addr", "redis_password",
		"jwt_secret", "s3_bucket", "aws_region",
	} {
		v.SetDefault(key, "")
	}

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("db_user and db_name are required")
	}

	return &cfg, nil
}
