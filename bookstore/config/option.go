package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.Server.WriteTimeout = d
	}
}

func WithDriver(driver string) Option {
	return func(cfg *Config) {
		if driver != "" {
			cfg.Database.Driver = driver
		}
	}
}
