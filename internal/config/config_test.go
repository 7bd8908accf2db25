package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
server:
  port: 8080
  env: production
  allowed_origins: ["https://bounties.example.com"]
database:
  driver: mysql
  url: "user:pass@tcp(localhost:3306)/bounties"
files:
  image_extensions: [png, tiff]
workers:
  expiry_interval: 15m
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"https://bounties.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, []string{"png", "tiff"}, cfg.Files.ImageExtensions)
	assert.Equal(t, 15*time.Minute, cfg.Workers.ExpiryInterval)
	assert.Equal(t, "https://ipfs.infura.io/ipfs", cfg.Files.Gateway)
	assert.Equal(t, 10, cfg.Notifications.PageSize)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("IMAGE_EXTENSIONS", "png,gif")
	t.Setenv("WS_ALLOWED_ORIGINS", "http://localhost:3000,https://bounties.example.com")

	require.NoError(t, LoadConfig())
	cfg := GetConfig()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"png", "gif"}, cfg.Files.ImageExtensions)
	assert.Equal(t, []string{"http://localhost:3000", "https://bounties.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.TokenTTL())
}
