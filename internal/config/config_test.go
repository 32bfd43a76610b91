package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultEnv, cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Empty(t, cfg.Database.DSNValue())
	assert.False(t, cfg.Admin.Enabled())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
port: 8080
env: production
allowed_origins:
  - sevafoundation.org
jwt_secret: keep-this-safe
admin:
  username: admin
  password: sevapass
database:
  host: 127.0.0.1
  port: 3306
  user: seva
  password: secret
  name: seva_core
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, []string{"sevafoundation.org"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Admin.Enabled())

	dsn := cfg.Database.DSNValue()
	assert.True(t, strings.HasPrefix(dsn, "seva:secret@tcp(127.0.0.1:3306)/seva_core"))
	assert.Contains(t, dsn, "parseTime=true")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DSN", "user:pass@tcp(db:3306)/seva")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "hunter2")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "user:pass@tcp(db:3306)/seva", cfg.Database.DSNValue())
	assert.True(t, cfg.Admin.Enabled())
}

func TestAdminEnabled(t *testing.T) {
	assert.False(t, AdminConfig{}.Enabled())
	assert.False(t, AdminConfig{Username: "admin"}.Enabled())
	assert.False(t, AdminConfig{Password: "pass"}.Enabled())
	assert.True(t, AdminConfig{Username: "admin", Password: "pass"}.Enabled())
	assert.True(t, AdminConfig{Username: "admin", PasswordHash: "$2a$10$x"}.Enabled())
}
