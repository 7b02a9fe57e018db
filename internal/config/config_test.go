package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "http://localhost:5173/account/integration/callback", cfg.Meli.RedirectURI)
	assert.Equal(t, "https://api.mercadolibre.com", cfg.Meli.APIBaseURL)
	assert.Equal(t, 20*time.Second, cfg.Meli.Timeout)
	assert.ElementsMatch(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.Task.OrderSyncEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("app:\n  port: \"9000\"\nmeli:\n  client_id: from-file\n  client_secret: file-secret\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	t.Setenv("MELI_MELI_CLIENT_ID", "from-env")
	t.Setenv("MELI_APP_ENV", "production")

	wd, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "from-env", cfg.Meli.ClientID)
	assert.Equal(t, "file-secret", cfg.Meli.ClientSecret)
	assert.True(t, cfg.IsProduction())
}
