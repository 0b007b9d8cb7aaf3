package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "RAINYDAY"

// envConfig lists the RAINYDAY_* variables understood by the server.
type envConfig struct {
	GRPCAddr        string        `envconfig:"GRPC_ADDR"`
	MetricsAddr     string        `envconfig:"METRICS_ADDR"`
	DatabaseDSN     string        `envconfig:"DATABASE_DSN"`
	SecretKey       string        `envconfig:"SECRET_KEY"`
	LogLevel        string        `envconfig:"LOG_LEVEL"`
	AccessTokenTTL  time.Duration `envconfig:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `envconfig:"REFRESH_TOKEN_TTL"`
	S3AccessKey     string        `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey     string        `envconfig:"S3_SECRET_KEY"`
	S3Bucket        string        `envconfig:"S3_BUCKET"`
	S3Region        string        `envconfig:"S3_REGION"`
	S3Endpoint      string        `envconfig:"S3_ENDPOINT"`
	PresignTTL      time.Duration `envconfig:"PRESIGN_TTL"`
}

// parseEnv overlays the variables that are set onto config.
func parseEnv(config *Config) error {
	var e envConfig
	if err := envconfig.Process(envPrefix, &e); err != nil {
		return err
	}

	setString(&config.GRPCAddr, e.GRPCAddr)
	setString(&config.MetricsAddr, e.MetricsAddr)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.LogLevel, e.LogLevel)
	setString(&config.S3AccessKey, e.S3AccessKey)
	setString(&config.S3SecretKey, e.S3SecretKey)
	setString(&config.S3Bucket, e.S3Bucket)
	setString(&config.S3Region, e.S3Region)
	setString(&config.S3Endpoint, e.S3Endpoint)

	if e.AccessTokenTTL != 0 {
		config.AccessTokenTTL = e.AccessTokenTTL
	}
	if e.RefreshTokenTTL != 0 {
		config.RefreshTokenTTL = e.RefreshTokenTTL
	}
	if e.PresignTTL != 0 {
		config.PresignTTL = e.PresignTTL
	}
	return nil
}
