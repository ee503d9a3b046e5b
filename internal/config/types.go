package config

import "time"

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 5000
	DefaultShutdownTimeout = 10 * time.Second
	DefaultEnvFile         = ".env"
)

type Config struct {
	Host            string
	Port            int
	Debug           bool
	ShutdownTimeout time.Duration
	Log             LogConfig
}

// LogConfig controls where logs go. An empty File means stderr.
type LogConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}
