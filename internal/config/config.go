package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Logger   LoggerConfig
}

type AppConfig struct {
	Name        string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type LoggerConfig struct {
	Level string
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "jobboard")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("DB_POOL_MAX_CONNS", 10)

	v.SetDefault("JWT_ACCESS_EXPIRES_IN", "15m")
	v.SetDefault("JWT_REFRESH_EXPIRES_IN", "168h")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")

	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			HTTPPort:    v.GetString("HTTP_PORT"),
		},
		Database: DatabaseConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			Name:           v.GetString("DB_NAME"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			SSLMode:        v.GetString("DB_SSL_MODE"),
			ConnectTimeout: v.GetDuration("DB_CONNECT_TIMEOUT"),
			PoolMaxConns:   v.GetInt32("DB_POOL_MAX_CONNS"),
		},
		JWT: JWTConfig{
			AccessSecret:     v.GetString("JWT_ACCESS_SECRET"),
			RefreshSecret:    v.GetString("JWT_REFRESH_SECRET"),
			AccessExpiresIn:  v.GetDuration("JWT_ACCESS_EXPIRES_IN"),
			RefreshExpiresIn: v.GetDuration("JWT_REFRESH_EXPIRES_IN"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if err := c.Database.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DatabaseConfig: %w", err))
	}
	if err := c.JWT.validate(); err != nil {
		errs = append(errs, fmt.Errorf("JWTConfig: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (c DatabaseConfig) validate() error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "DB_NAME")
	}
	if strings.TrimSpace(c.User) == "" {
		missing = append(missing, "DB_USER")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c JWTConfig) validate() error {
	var missing []string
	if strings.TrimSpace(c.AccessSecret) == "" {
		missing = append(missing, "JWT_ACCESS_SECRET")
	}
	if strings.TrimSpace(c.RefreshSecret) == "" {
		missing = append(missing, "JWT_REFRESH_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if c.AccessExpiresIn <= 0 || c.RefreshExpiresIn <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}
