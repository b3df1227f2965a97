package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"med_transport/internal/middleware"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("PORT")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "supersecret", cfg.JWTSecret)
	assert.Equal(t, 19.9315402, cfg.FacilityLat)
	assert.Equal(t, 99.2209747, cfg.FacilityLng)
}

// A secret supplied only through .env must end up signing tokens once
// it is handed to the middleware at boot.
func TestDotenvSecretReachesTokenLayer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\n"), 0o600))

	os.Unsetenv("JWT_SECRET") // godotenv never overrides an existing var
	t.Cleanup(func() { os.Unsetenv("JWT_SECRET") })
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg := Load()
	require.Equal(t, "from-dotenv", cfg.JWTSecret)

	middleware.SetSecret(cfg.JWTSecret)
	t.Cleanup(func() { middleware.SetSecret("supersecret") })

	token, err := middleware.GenerateToken(42, "USER", "Somchai J")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}
