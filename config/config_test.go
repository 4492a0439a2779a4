package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	c := AppConfig{}
	applyDefaults(&c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, filepath.Join("data", "singleblog.db"), c.DBPath)
	assert.Equal(t, filepath.Join("data", "images"), c.ImagesDir)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.AdminRoleToken, "the admin token never has a default")
}

func TestApplyDefaults_DoesNotOverrideSetValues(t *testing.T) {
	c := AppConfig{AppPort: "9000", DBDriver: "mysql", RateLimitPerMinute: 5}
	applyDefaults(&c)

	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, "mysql", c.DBDriver)
	assert.Equal(t, 5, c.RateLimitPerMinute)
}

func TestLoadJSONConfig_GroupedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"AppPort": "9001", "AdminRoleToken": "tok", "ImagesDir": "imgs", "RateLimitPerMinute": 12},
		"database": {"DBDriver": "sqlite", "DBPath": "blog.db"},
		"redis": {"RedisHost": "redis.local", "RedisPort": 6380},
		"log": {"Level": "debug", "Path": "logs/app.log"}
	}`), 0o644))

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "9001", c.AppPort)
	assert.Equal(t, "tok", c.AdminRoleToken)
	assert.Equal(t, "imgs", c.ImagesDir)
	assert.Equal(t, 12, c.RateLimitPerMinute)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "blog.db", c.DBPath)
	assert.Equal(t, "redis.local", c.RedisHost)
	assert.Equal(t, 6380, c.RedisPort)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "logs/app.log", c.LogPath)
}

func TestLoadJSONConfig_FlatKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"AppPort": "9002",
		"AdminRoleToken": "flat-tok",
		"DBPath": "flat.db"
	}`), 0o644))

	var c AppConfig
	require.NoError(t, loadJSONConfig(path, &c))

	assert.Equal(t, "9002", c.AppPort)
	assert.Equal(t, "flat-tok", c.AdminRoleToken)
	assert.Equal(t, "flat.db", c.DBPath)
}

func TestLoadJSONConfig_MissingFileIsIgnored(t *testing.T) {
	var c AppConfig
	assert.NoError(t, loadJSONConfig(filepath.Join(t.TempDir(), "absent.json"), &c))
	assert.Equal(t, AppConfig{}, c)
}

func TestLoadJSONConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	var c AppConfig
	assert.Error(t, loadJSONConfig(path, &c))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ADMIN_ROLE_TOKEN", "env-tok")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "99")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c := AppConfig{AdminRoleToken: "from-file"}
	applyEnvOverrides(&c)

	assert.Equal(t, "env-tok", c.AdminRoleToken)
	assert.Equal(t, "mysql", c.DBDriver)
	assert.Equal(t, 99, c.RateLimitPerMinute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
}
