package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/rainyday/internal/flagx"
)

// parseFlags applies the short command-line flags onto config:
//
//	-a string     gRPC bind address (e.g. ":50051")
//	-m string     metrics bind address
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-l string     log level
//	-t duration   access token lifetime
//	-r duration   refresh token lifetime
//	-u string     S3 access key
//	-p string     S3 secret key
//	-b string     S3 bucket
//	-g string     S3 region
//	-e string     S3 endpoint
//
// Arguments not listed above are ignored so the config file flags can share
// the command line.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-d", "-s", "-l", "-t", "-r", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.GRPCAddr, "a", config.GRPCAddr, "gRPC address")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.DurationVar(&config.AccessTokenTTL, "t", config.AccessTokenTTL, "access token lifetime")
	fs.DurationVar(&config.RefreshTokenTTL, "r", config.RefreshTokenTTL, "refresh token lifetime")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3Endpoint, "e", config.S3Endpoint, "S3 endpoint")

	return fs.Parse(args)
}
