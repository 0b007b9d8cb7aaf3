package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type envConfig struct {
	ServerEndpointAddr  string        `envconfig:"SERVER_ADDR"`
	OnlineCheckInterval time.Duration `envconfig:"ONLINE_CHECK_INTERVAL"`
	DBPath              string        `envconfig:"CLIENT_DB_PATH"`
	RequestTimeout      time.Duration `envconfig:"REQUEST_TIMEOUT"`
	LogLevel            string        `envconfig:"CLIENT_LOG_LEVEL"`
}

func parseEnv(config *Config) error {
	var e envConfig
	if err := envconfig.Process("RAINYDAY", &e); err != nil {
		return err
	}

	if e.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = e.ServerEndpointAddr
	}
	if e.OnlineCheckInterval != 0 {
		config.OnlineCheckInterval = e.OnlineCheckInterval
	}
	if e.DBPath != "" {
		config.DBPath = e.DBPath
	}
	if e.RequestTimeout != 0 {
		config.RequestTimeout = e.RequestTimeout
	}
	if e.LogLevel != "" {
		config.LogLevel = e.LogLevel
	}
	return nil
}
