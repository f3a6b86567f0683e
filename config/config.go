package config

import (
	"github.com/louis/extensions/logger"
	"github.com/sirupsen/logrus"
)

// Config represents options that configure the global behavior of the helpers
type Config struct {
	// Project logger
	Logger *logrus.Logger

	// The level applied to Logger when the config is built
	LogLevel logrus.Level
}

// NewConfig creates a new Config object with reasonable defaults for real usage
func NewConfig() Config {
	return NewConfigWithLevel(logrus.InfoLevel)
}

// NewConfigWithLevel creates a Config backed by the project logger set to level.
func NewConfigWithLevel(level logrus.Level) Config {
	l := logger.GetProjectLogger()
	l.SetLevel(level)

	return Config{
		Logger:   l,
		LogLevel: level,
	}
}
