package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/rainyday/internal/flagx"
	"github.com/dmitrijs2005/rainyday/internal/timex"
)

// JsonConfig mirrors the JSON config file structure.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DBPath              string         `json:"db_path"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	LogLevel            string         `json:"log_level"`
}

// parseJSON overlays values from the file named by -c/-config, if any.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.OnlineCheckInterval.Duration != 0 {
		config.OnlineCheckInterval = c.OnlineCheckInterval.Duration
	}
	if c.DBPath != "" {
		config.DBPath = c.DBPath
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	return nil
}
