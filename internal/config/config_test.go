package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/hero"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.True(t, cfg.DefaultCredentials)
	assert.Len(t, cfg.AdminToken, 64)
	assert.Equal(t, hero.DefaultConfig(), cfg.HeroConfig())
}

func TestLoadFrom_Environment(t *testing.T) {
	cfg, err := LoadFrom(env(map[string]string{
		"PORT":           " 9090 ",
		"GIN_MODE":       "release",
		"ADMIN_USERNAME": "zach",
		"ADMIN_PASSWORD": "s3cret",
		"ADMIN_TOKEN":    "0123456789abcdef0123",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.Mode)
	assert.False(t, cfg.DefaultCredentials)
	assert.Equal(t, "0123456789abcdef0123", cfg.AdminToken)
}

func TestLoadFrom_InvalidEnvironment(t *testing.T) {
	_, err := LoadFrom(env(map[string]string{"PORT": "http"}))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = LoadFrom(env(map[string]string{"GIN_MODE": "verbose"}))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = LoadFrom(env(map[string]string{"ADMIN_TOKEN": "short"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFrom_HeroFile(t *testing.T) {
	path := writeFile(t, `
hero:
  phrases: ["Gopher", "Site Reliability Engineer"]
  typing_interval: 100ms
  pause_duration: 1.5s
  layers: [3, 4, 6, 4, 3]
  ambient_interval: 400ms
  seed: 42
`)
	cfg, err := LoadFrom(env(map[string]string{"PORTFOLIO_CONFIG": path}))
	require.NoError(t, err)

	h := cfg.HeroConfig()
	assert.Equal(t, []string{"Gopher", "Site Reliability Engineer"}, h.Typing.Phrases)
	assert.Equal(t, 100*time.Millisecond, h.Typing.TypingInterval)
	assert.Equal(t, 40*time.Millisecond, h.Typing.DeletingInterval)
	assert.Equal(t, 1500*time.Millisecond, h.Typing.PauseDuration)
	assert.Equal(t, []int{3, 4, 6, 4, 3}, h.Pulse.Layers)
	assert.Equal(t, 400*time.Millisecond, h.Pulse.Interval)
	assert.Equal(t, uint64(42), h.Pulse.Seed)
}

func TestLoadFrom_InvalidHeroFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty phrases", "hero:\n  phrases: []\n"},
		{"blank phrase", "hero:\n  phrases: [\"ok\", \"\"]\n"},
		{"single layer", "hero:\n  layers: [5]\n"},
		{"empty layer", "hero:\n  layers: [3, 0, 3]\n"},
		{"ambient too fast", "hero:\n  ambient_interval: 50ms\n"},
		{"ambient range", "hero:\n  min_ambient: 5\n  max_ambient: 2\n"},
		{"not yaml", "hero: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(env(map[string]string{"PORTFOLIO_CONFIG": writeFile(t, tt.body)}))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(env(map[string]string{"PORTFOLIO_CONFIG": "/does/not/exist.yaml"}))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
