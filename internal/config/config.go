package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

func Load() (*Config, error) {
	port, err := loadPort()
	if err != nil {
		return nil, err
	}

	debug := false
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEBUG %q: %w", v, err)
		}
	}

	shutdownTimeout := DefaultShutdownTimeout
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		shutdownTimeout, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		if shutdownTimeout <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be positive", v)
		}
	}

	logConfig, err := loadLogConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:            DefaultHost,
		Port:            port,
		Debug:           debug,
		ShutdownTimeout: shutdownTimeout,
		Log:             logConfig,
	}, nil
}

// Addr is the host:port the server binds.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func loadPort() (int, error) {
	v := strings.TrimSpace(os.Getenv("PORT"))
	if v == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", v, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid PORT %q: must be between 1 and 65535", v)
	}

	return port, nil
}

func loadLogConfig() (LogConfig, error) {
	maxSize, err := nonNegativeInt("LOG_MAX_SIZE_MB", 100)
	if err != nil {
		return LogConfig{}, err
	}

	maxBackups, err := nonNegativeInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return LogConfig{}, err
	}

	maxAge, err := nonNegativeInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return LogConfig{}, err
	}

	return LogConfig{
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  maxSize,
		MaxBackups: maxBackups,
		MaxAgeDays: maxAge,
	}, nil
}

func nonNegativeInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}

	return n, nil
}
