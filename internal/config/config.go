// Package config reads and validates app settings from env/.env
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	wbfconfig "github.com/wb-go/wbf/config"
)

const (
	defaultPort            = "9000"
	defaultGinMode         = "release"
	defaultLogLevel        = "info"
	defaultStoreTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	StoreURL        string        `validate:"required,url,startswith=http"`
	AppPort         string        `validate:"required,numeric"`
	GinMode         string        `validate:"oneof=debug release test"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	StoreTimeout    time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Getter - всё, что нужно от источника настроек
type Getter interface {
	GetString(key string) string
}

// Load - читает энвы (и ./.env если он есть) и собирает из них Config
func Load(envFile string) (*Config, error) {
	appConfig := wbfconfig.New()
	appConfig.EnableEnv("")
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := appConfig.LoadEnvFiles(envFile); err != nil {
				return nil, fmt.Errorf("failed to load env-file %q: %w", envFile, err)
			}
		}
	}

	return Parse(appConfig)
}

// Parse - собирает Config из любого источника строковых значений, подставляет дефолты и валидирует
func Parse(src Getter) (*Config, error) {
	storeTimeout, err := durationOrDefault(src.GetString("STORE_TIMEOUT"), defaultStoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("incorrect STORE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := durationOrDefault(src.GetString("SHUTDOWN_TIMEOUT"), defaultShutdownTimeout)
	if err != nil {
		return nil, fmt.Errorf("incorrect SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := &Config{
		StoreURL:        strings.TrimRight(strings.TrimSpace(src.GetString("STORE_URL")), "/"),
		AppPort:         stringOrDefault(src.GetString("APP_PORT"), defaultPort),
		GinMode:         stringOrDefault(src.GetString("GIN_MODE"), defaultGinMode),
		LogLevel:        strings.ToLower(stringOrDefault(src.GetString("LOG_LEVEL"), defaultLogLevel)),
		StoreTimeout:    storeTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	if err := validator.New().Struct(cfg); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && len(vErrs) > 0 {
			return nil, fmt.Errorf("invalid config field %s (rule %q): %w", vErrs[0].Field(), vErrs[0].Tag(), err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func stringOrDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

func durationOrDefault(v string, def time.Duration) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
