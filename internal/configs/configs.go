package config

import (
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppHost                string `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort                string `env:"APP_PORT" envDefault:"8080"`
	DatabaseURL            string `env:"DATABASE_URL" envDefault:"todos.db"`
	RateLimit              int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`
	RedisAddr              string `env:"REDIS_ADDR"`
	RedisKeyPrefix         string `env:"REDIS_RATE_LIMIT_PREFIX" envDefault:"todo_rate_limit:"`
	ShutdownTimeoutSeconds int    `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`
}

// AppURL is the listen address handed to echo.
func (c Config) AppURL() string {
	return net.JoinHostPort(c.AppHost, c.AppPort)
}

// LoadDotEnv loads a .env file from the working directory if there is one.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AppHost == "" || c.AppPort == "" {
		return errors.New("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1 and 8080)")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if c.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if c.RedisAddr != "" && c.RedisKeyPrefix == "" {
		return errors.New("REDIS_RATE_LIMIT_PREFIX must not be empty when REDIS_ADDR is set")
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}
