package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "s3cret"
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "classforum", cfg.Database.DBName)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "7070")
		t.Setenv("JWT_SECRET", "env-secret")

		path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: "file-secret"
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
	})

	t.Run("missing jwt secret is rejected", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  port: "9090"
`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("allow-list entry without last name is rejected", func(t *testing.T) {
		path := writeConfigFile(t, `
jwt:
  secret: "s3cret"
admin:
  allow_list:
    - first_name: "mark"
      last_name: ""
`)
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestIsAdminIdentity(t *testing.T) {
	cfg := &Config{}
	cfg.Admin.AllowList = []AdminIdentity{
		{FirstName: "марк", LastName: "габдрахимов"},
		{FirstName: "Jane", LastName: "Doe"},
	}

	assert.True(t, cfg.IsAdminIdentity("марк", "габдрахимов"))
	assert.True(t, cfg.IsAdminIdentity("Jane", "doe"))
	assert.True(t, cfg.IsAdminIdentity("  jane ", "DOE"))
	assert.False(t, cfg.IsAdminIdentity("Jane", "Smith"))
	assert.False(t, cfg.IsAdminIdentity("", ""))
}
