package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.test.yaml", `
server:
  port: 9000
  env: production
database:
  driver: postgres
  host: db.internal
  port: 5432
  conn_max_lifetime: 2m
jwt:
  secret: from-file
cors:
  allow_origins: "https://a.example, https://b.example"
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 2*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins())
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_BadEnvPort(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_RedisEnabledByEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "cache")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache", cfg.Redis.Host)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "ftp" }},
		{"s3 without bucket", func(c *Config) { c.Storage.Backend = "s3" }},
		{"zero server port", func(c *Config) { c.Server.Port = 0 }},
		{"negative db port", func(c *Config) { c.Database.Port = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestGetDSN(t *testing.T) {
	mysqlCfg := Default().Database
	mysqlCfg.Password = "p@ss"
	dsn := mysqlCfg.GetDSN()
	assert.Contains(t, dsn, "bloc:p@ss@tcp(localhost:3306)/bloc?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	sqliteCfg := DatabaseConfig{Driver: "sqlite", DSN: "blog.db"}
	assert.Equal(t, "file:blog.db?_cslike=1", sqliteCfg.GetDSN())

	explicit := DatabaseConfig{Driver: "postgres", DSN: "postgres://u@h/db"}
	assert.Equal(t, "postgres://u@h/db", explicit.GetDSN())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env.local", "BLOC_TEST_A=local\n")
	writeFile(t, dir, ".env", "BLOC_TEST_A=base\nBLOC_TEST_B=base\n")
	t.Setenv("BLOC_TEST_B", "os")
	t.Cleanup(func() { os.Unsetenv("BLOC_TEST_A") })

	loaded, err := LoadDotEnv(dir)
	require.NoError(t, err)

	assert.Len(t, loaded, 2)
	assert.Equal(t, "local", os.Getenv("BLOC_TEST_A"))
	assert.Equal(t, "os", os.Getenv("BLOC_TEST_B"))
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	loaded, err := LoadDotEnv(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
