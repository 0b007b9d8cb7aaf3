// Package config loads runtime configuration for the RainyDay terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. RAINYDAY_* environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the backend gRPC endpoint
//	-i int        online status check interval (seconds)
//	-f string     path of the local session database
//	-t duration   per-request timeout
//	-l string     log level
//
// # JSON schema
//
// Durations accept either strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "db_path": "rainyday.db",
//	  "request_timeout": "10s"
//	}
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the RainyDay CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DBPath              string
	RequestTimeout      time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DBPath = "rainyday.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

func (c *Config) Validate() error {
	switch {
	case c.ServerEndpointAddr == "":
		return errors.New("server address is empty")
	case c.DBPath == "":
		return errors.New("database path is empty")
	case c.OnlineCheckInterval <= 0:
		return errors.New("online check interval must be positive")
	case c.RequestTimeout <= 0:
		return errors.New("request timeout must be positive")
	}
	return nil
}

// Load constructs a Config for args (without the program name), applying
// defaults and then each source in order of precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
