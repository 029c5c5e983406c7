package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost     string
	ServerPort     string
	RequestTimeout time.Duration

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; rating rate limiting is disabled without it)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	TokenTTL  time.Duration

	// S3 configuration (optional; image upload is disabled without a bucket)
	S3Bucket string
	S3Region string

	// Rating submissions allowed per client IP per minute
	RatingRateLimit int
}

// Load reads configuration from environment variables and an optional config file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RECIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.timeout", "30s")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "recipes")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.url", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("rating.ratelimit", 10)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	cfg := &Config{
		ServerHost:      v.GetString("server.host"),
		ServerPort:      v.GetString("server.port"),
		RequestTimeout:  v.GetDuration("server.timeout"),
		DBHost:          v.GetString("db.host"),
		DBPort:          v.GetString("db.port"),
		DBUser:          v.GetString("db.user"),
		DBPassword:      v.GetString("db.password"),
		DBName:          v.GetString("db.name"),
		DBSSLMode:       v.GetString("db.sslmode"),
		RedisHost:       v.GetString("redis.host"),
		RedisPort:       v.GetString("redis.port"),
		RedisPassword:   v.GetString("redis.password"),
		RedisDB:         v.GetInt("redis.db"),
		RedisURL:        v.GetString("redis.url"),
		JWTSecret:       v.GetString("jwt.secret"),
		TokenTTL:        v.GetDuration("jwt.ttl"),
		S3Bucket:        v.GetString("s3.bucket"),
		S3Region:        v.GetString("s3.region"),
		RatingRateLimit: v.GetInt("rating.ratelimit"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "RECIPE_JWT_SECRET")
	}
	if c.DBHost == "" {
		missing = append(missing, "RECIPE_DB_HOST")
	}
	if c.DBName == "" {
		missing = append(missing, "RECIPE_DB_NAME")
	}
	if c.ServerPort == "" {
		missing = append(missing, "RECIPE_SERVER_PORT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required configuration is not set: %s", strings.Join(missing, ", "))
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %v", c.RequestTimeout)
	}
	return nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// RedisEnabled reports whether a Redis endpoint is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}
