package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()
	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, "rainyday.db", c.DBPath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	require.NoError(t, c.Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	c, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-i", "10", "-f", "/tmp/x.db", "-t", "2s", "-l", "debug"},
			expected: &Config{
				ServerEndpointAddr:  "127.0.0.1:9090",
				OnlineCheckInterval: 10 * time.Second,
				DBPath:              "/tmp/x.db",
				RequestTimeout:      2 * time.Second,
				LogLevel:            "debug",
			},
		},
		{
			name:     "interval untouched when absent",
			args:     []string{"-a", "h:1", "-c", "ignored.json"},
			expected: &Config{ServerEndpointAddr: "h:1", OnlineCheckInterval: 3 * time.Second, DBPath: "rainyday.db", RequestTimeout: 10 * time.Second, LogLevel: "warn"},
		},
		{name: "bad interval", args: []string{"-i", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			err := parseFlags(c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, c))
		})
	}
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_endpoint_addr": "example:1",
		"online_check_interval": "5s",
		"request_timeout": 1000000000
	}`), 0o600))

	c := defaults()
	require.NoError(t, parseJSON(c, []string{"-c", path}))
	assert.Equal(t, "example:1", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, time.Second, c.RequestTimeout)
	assert.Equal(t, "rainyday.db", c.DBPath)
}

func TestParseJSON_Errors(t *testing.T) {
	c := defaults()
	require.Error(t, parseJSON(c, []string{"-config", filepath.Join(t.TempDir(), "missing.json")}))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	require.Error(t, parseJSON(c, []string{"-config", bad}))
}

func TestParseEnv(t *testing.T) {
	t.Setenv("RAINYDAY_SERVER_ADDR", "env:50051")
	t.Setenv("RAINYDAY_REQUEST_TIMEOUT", "4s")
	t.Setenv("RAINYDAY_CLIENT_DB_PATH", "env.db")

	c := defaults()
	require.NoError(t, parseEnv(c))
	assert.Equal(t, "env:50051", c.ServerEndpointAddr)
	assert.Equal(t, 4*time.Second, c.RequestTimeout)
	assert.Equal(t, "env.db", c.DBPath)
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr": "json:1", "db_path": "json.db"}`), 0o600))
	t.Setenv("RAINYDAY_SERVER_ADDR", "env:1")

	c, err := Load([]string{"-c", path, "-a", "flag:1"})
	require.NoError(t, err)
	assert.Equal(t, "flag:1", c.ServerEndpointAddr)
	assert.Equal(t, "json.db", c.DBPath)

	c, err = Load([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "env:1", c.ServerEndpointAddr)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load([]string{"-i", "0"})
	assert.Error(t, err)
}
