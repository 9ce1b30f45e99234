package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mapGetter map[string]string

func (m mapGetter) GetString(key string) string {
	return m[key]
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(mapGetter{"STORE_URL": "http://imagestore:8080/"})
	require.NoError(t, err)

	require.Equal(t, "http://imagestore:8080", cfg.StoreURL)
	require.Equal(t, "9000", cfg.AppPort)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 10*time.Second, cfg.StoreTimeout)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(mapGetter{
		"STORE_URL":        "https://store.local",
		"APP_PORT":         "8081",
		"GIN_MODE":         "debug",
		"LOG_LEVEL":        "DEBUG",
		"STORE_TIMEOUT":    "1500ms",
		"SHUTDOWN_TIMEOUT": "30s",
	})
	require.NoError(t, err)

	require.Equal(t, "https://store.local", cfg.StoreURL)
	require.Equal(t, "8081", cfg.AppPort)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 1500*time.Millisecond, cfg.StoreTimeout)
	require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  mapGetter
	}{
		{name: "missing store url", src: mapGetter{}},
		{name: "store url not a url", src: mapGetter{"STORE_URL": "imagestore"}},
		{name: "store url not http", src: mapGetter{"STORE_URL": "ftp://imagestore"}},
		{name: "bad port", src: mapGetter{"STORE_URL": "http://s", "APP_PORT": "port"}},
		{name: "bad gin mode", src: mapGetter{"STORE_URL": "http://s", "GIN_MODE": "prod"}},
		{name: "bad log level", src: mapGetter{"STORE_URL": "http://s", "LOG_LEVEL": "loud"}},
		{name: "bad timeout", src: mapGetter{"STORE_URL": "http://s", "STORE_TIMEOUT": "ten"}},
		{name: "negative timeout", src: mapGetter{"STORE_URL": "http://s", "STORE_TIMEOUT": "-1s"}},
		{name: "bad shutdown timeout", src: mapGetter{"STORE_URL": "http://s", "SHUTDOWN_TIMEOUT": "1y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.src)
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}
