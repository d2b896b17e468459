// Package config собирает настройки passkeeper из переменных окружения и .env файла.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Имена переменных окружения
const (
	EnvDB               = "PASSKEEPER_DB"
	EnvVaultDB          = "PASSKEEPER_VAULT_DB"
	EnvDeviceSecretFile = "PASSKEEPER_DEVICE_SECRET_FILE"
	EnvLogLevel         = "PASSKEEPER_LOG_LEVEL"
	EnvHandleTTL        = "PASSKEEPER_HANDLE_TTL"
	EnvUsernameKeywords = "PASSKEEPER_USERNAME_KEYWORDS"
	EnvPasswordKeywords = "PASSKEEPER_PASSWORD_KEYWORDS"
	EnvMasterPassword   = "PASSKEEPER_MASTER_PASSWORD"
)

// Значения по умолчанию
const (
	DefaultDB               = "passkeeper.db"
	DefaultVaultDB          = "passkeeper-vault.db"
	DefaultDeviceSecretFile = "passkeeper.secret"
	DefaultHandleTTL        = 5 * time.Minute
)

type Config struct {
	DBPath           string
	VaultDBPath      string
	DeviceSecretFile string
	UsernameKeywords []string
	PasswordKeywords []string
	HandleTTL        time.Duration
	LogLevel         slog.Level
}

// Load загружает .env (если файлы есть) и читает конфигурацию из окружения.
// Отсутствующий .env не является ошибкой.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv читает конфигурацию только из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:           getEnv(EnvDB, DefaultDB),
		VaultDBPath:      getEnv(EnvVaultDB, DefaultVaultDB),
		DeviceSecretFile: getEnv(EnvDeviceSecretFile, DefaultDeviceSecretFile),
		HandleTTL:        DefaultHandleTTL,
		LogLevel:         slog.LevelWarn,
		UsernameKeywords: splitList(os.Getenv(EnvUsernameKeywords)),
		PasswordKeywords: splitList(os.Getenv(EnvPasswordKeywords)),
	}

	if raw := os.Getenv(EnvLogLevel); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, raw, err)
		}
	}

	if raw := os.Getenv(EnvHandleTTL); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvHandleTTL, raw, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be positive", EnvHandleTTL, raw)
		}
		cfg.HandleTTL = ttl
	}

	return cfg, nil
}

// MasterPassword возвращает мастер-пароль из окружения, если он задан
func MasterPassword() string {
	return os.Getenv(EnvMasterPassword)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
