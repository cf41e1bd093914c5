package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
provider:
  base_url: https://api.example.com
  client_id: cid
  client_secret: secret
  timeout: 10s
oracle:
  command: /usr/local/bin/scorer
  args: ["--mode", "full"]
refresh:
  cron: "@every 15m"
recorder:
  sqlite_path: /var/lib/smartfinance/runs.db
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "/usr/local/bin/scorer", cfg.Oracle.Command)
	assert.Equal(t, []string{"--mode", "full"}, cfg.Oracle.Args)
	assert.Equal(t, "@every 15m", cfg.Refresh.Cron)
	assert.Equal(t, "/var/lib/smartfinance/runs.db", cfg.Recorder.SQLitePath)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Unset fields pick up defaults.
	assert.Equal(t, 20*time.Second, cfg.Oracle.Timeout)
	assert.Equal(t, int64(1<<20), cfg.Oracle.MaxOutputBytes)

	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileIsDemoMode(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Provider.BaseURL)
	assert.Empty(t, cfg.Oracle.Command)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "@every 1h", cfg.Refresh.Cron)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "provider: [not a mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
provider:
  base_url: https://file.example.com
  client_id: file-cid
  client_secret: file-secret
log_level: warn
`)

	t.Setenv("SMARTFINANCE_PROVIDER_URL", "https://env.example.com")
	t.Setenv("SMARTFINANCE_CLIENT_ID", "env-cid")
	t.Setenv("SMARTFINANCE_ORACLE_CMD", "/opt/scorer")
	t.Setenv("SMARTFINANCE_LOG_LEVEL", "trace")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, "env-cid", cfg.Provider.ClientID)
	assert.Equal(t, "/opt/scorer", cfg.Oracle.Command)
	assert.Equal(t, "trace", cfg.LogLevel)
	// Values without an override come from the file.
	assert.Equal(t, "file-secret", cfg.Provider.ClientSecret)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "empty config is valid",
			mutate: func(c *Config) {},
		},
		{
			name: "provider url without client id",
			mutate: func(c *Config) {
				c.Provider.BaseURL = "https://api.example.com"
				c.Provider.ClientSecret = "secret"
			},
			wantErr: "provider.client_id is required",
		},
		{
			name: "provider url without client secret",
			mutate: func(c *Config) {
				c.Provider.BaseURL = "https://api.example.com"
				c.Provider.ClientID = "cid"
			},
			wantErr: "provider.client_secret is required",
		},
		{
			name: "oracle args without command",
			mutate: func(c *Config) {
				c.Oracle.Args = []string{"--mode", "full"}
			},
			wantErr: "oracle.command is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
