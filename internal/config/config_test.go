package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "barber"
password = "from-file"
dbname = "barbearia"

[logs]
level = "debug"

[metrics]
enabled = true

[business]
timezone = "America/Sao_Paulo"

[noshow]
schedule = "*/10 * * * *"

[admin]
api_token = "secret-token"
password_hash = "$2a$10$abcdefghijklmnopqrstuu"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "from-file", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "*/10 * * * *", cfg.NoShow.Schedule)
	assert.True(t, cfg.NoShow.Enabled)
	assert.Equal(t, "America/Sao_Paulo", cfg.Business.Location().String())
	assert.Contains(t, cfg.Database.DSN(), "dbname=barbearia")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDBPassword, "from-env")
	t.Setenv(EnvAdminAPIToken, "env-token")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-token", cfg.Admin.APIToken)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Admin.APIToken = "token"
		cfg.Admin.PasswordHash = "hash"
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.HTTPPort = 0 }},
		{name: "bad timezone", mutate: func(c *Config) { c.Business.Timezone = "Mars/Olympus" }},
		{name: "bad cron", mutate: func(c *Config) { c.NoShow.Schedule = "every five minutes" }},
		{name: "no token", mutate: func(c *Config) { c.Admin.APIToken = "" }},
		{name: "no password hash", mutate: func(c *Config) { c.Admin.PasswordHash = "" }},
		{name: "metrics path", mutate: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Path = "metrics"
		}},
	}

	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_DisabledSweepSkipsSchedule(t *testing.T) {
	cfg := Default()
	cfg.Admin.APIToken = "token"
	cfg.Admin.PasswordHash = "hash"
	cfg.NoShow.Enabled = false
	cfg.NoShow.Schedule = ""

	assert.NoError(t, cfg.Validate())
}
