package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load limpia el estado global de viper entre tests.
func load(t *testing.T, cfgFile string) (Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	if err := Init(cfgFile); err != nil {
		return Config{}, err
	}
	return Load()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT",
		"BAZI_HTTP_PORT",
		"BAZI_CALENDAR_SOURCE",
		"BAZI_CALENDAR_DSN",
		"BAZI_CALENDAR_REMOTE_URL",
		"BAZI_CALENDAR_TIMEOUT",
		"BAZI_CALENDAR_CACHE",
		"BAZI_CALENDAR_CACHE_SIZE",
		"BAZI_HTTP_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load(t, "")
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"HTTP.Port", cfg.HTTP.Port, 5001},
		{"HTTP.ReadTimeout", cfg.HTTP.ReadTimeout, 5 * time.Second},
		{"HTTP.WriteTimeout", cfg.HTTP.WriteTimeout, 10 * time.Second},
		{"HTTP.ShutdownTimeout", cfg.HTTP.ShutdownTimeout, 10 * time.Second},
		{"Log.Level", cfg.Log.Level, "info"},
		{"Log.Format", cfg.Log.Format, "json"},
		{"App.Name", cfg.App.Name, "bazi-chart"},
		{"App.DevMode", cfg.App.DevMode, false},
		{"Calendar.Source", cfg.Calendar.Source, SourceLunarGo},
		{"Calendar.Timeout", cfg.Calendar.Timeout, 2 * time.Second},
		{"Calendar.Cache", cfg.Calendar.Cache, true},
		{"Calendar.CacheSize", cfg.Calendar.CacheSize, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, ":5001", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BAZI_HTTP_PORT", "8080")
	t.Setenv("BAZI_CALENDAR_SOURCE", "Remote")
	t.Setenv("BAZI_CALENDAR_REMOTE_URL", "http://calendar.internal")
	t.Setenv("BAZI_CALENDAR_TIMEOUT", "750ms")
	t.Setenv("BAZI_HTTP_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("BAZI_CALENDAR_CACHE_SIZE", "128")

	cfg, err := load(t, "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, SourceRemote, cfg.Calendar.Source)
	assert.Equal(t, "http://calendar.internal", cfg.Calendar.RemoteURL)
	assert.Equal(t, 750*time.Millisecond, cfg.Calendar.Timeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 128, cfg.Calendar.CacheSize)
}

func TestLoad_PlainPortFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := load(t, "")
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTP.Port)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bazi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 7000
calendar:
  source: postgres
  dsn: postgres://bazi@localhost/bazi
  cache: false
app:
  dev_mode: true
`), 0o600))

	cfg, err := load(t, path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.HTTP.Port)
	assert.Equal(t, SourcePostgres, cfg.Calendar.Source)
	assert.Equal(t, "postgres://bazi@localhost/bazi", cfg.Calendar.DSN)
	assert.False(t, cfg.Calendar.Cache)
	assert.True(t, cfg.App.DevMode)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := load(t, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"BAZI_CALENDAR_TIMEOUT": "soon"}},
		{"unknown source", map[string]string{"BAZI_CALENDAR_SOURCE": "almanac"}},
		{"postgres without dsn", map[string]string{"BAZI_CALENDAR_SOURCE": "postgres"}},
		{"remote without url", map[string]string{"BAZI_CALENDAR_SOURCE": "remote"}},
		{"port out of range", map[string]string{"BAZI_HTTP_PORT": "70000"}},
		{"zero cache size", map[string]string{"BAZI_CALENDAR_CACHE_SIZE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load(t, "")
			assert.Error(t, err)
		})
	}
}
