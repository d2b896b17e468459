package keystore

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DeviceSecretSize размер секрета устройства в байтах
const DeviceSecretSize = 32

// LoadOrCreateDeviceSecret читает секрет устройства из path или создает новый файл с правами 0600.
// Секрет привязывает обернутые ключи к этой установке: без него они не разворачиваются.
func LoadOrCreateDeviceSecret(path string) ([]byte, error) {
	secret, err := os.ReadFile(path)
	if err == nil {
		if len(secret) < DeviceSecretSize {
			return nil, fmt.Errorf("device secret %s is too short: %d bytes", path, len(secret))
		}
		return secret, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read device secret: %w", err)
	}

	secret = make([]byte, DeviceSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate device secret: %w", err)
	}

	if err := writeSecretFile(path, secret); err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Файл успел создать другой процесс
			return LoadOrCreateDeviceSecret(path)
		}
		return nil, err
	}

	slog.Info("device secret created", "path", path)
	return secret, nil
}

// linkFile подменяется в тестах
var linkFile = os.Link

// writeSecretFile пишет секрет во временный файл рядом с path и публикует его
// жесткой ссылкой. По path либо ничего нет, либо лежит полный секрет.
func writeSecretFile(path string, secret []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create device secret: %w", err)
	}
	defer func() {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = errors.Join(err, fmt.Errorf("failed to remove temp file: %w", rmErr))
		}
	}()

	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod device secret: %w", err)
	}
	if _, err := tmp.Write(secret); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write device secret: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync device secret: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close device secret: %w", err)
	}

	if err := linkFile(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to publish device secret: %w", err)
	}
	return nil
}
