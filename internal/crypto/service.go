package crypto

import (
	"context"
	"errors"
	"fmt"
)

// DefaultKeyAlias alias ключа шифрования сохраненных паролей
const DefaultKeyAlias = "passkeeper-data"

// KeyHandle непрозрачный дескриптор ключа.
// Сырые байты ключа доступны только внутри fn и не должны из нее утекать.
type KeyHandle interface {
	WithKey(fn func(key []byte) error) error
}

//go:generate moq -out keyprovider_mock.go . KeyProvider

// KeyProvider хранилище ключей: возвращает ключ по alias, создавая его при первом обращении
type KeyProvider interface {
	GetOrCreateKey(ctx context.Context, alias string) (KeyHandle, error)
}

// Service шифрует секреты для хранения ключом из KeyProvider
type Service struct {
	keys  KeyProvider
	alias string
}

// NewService создает сервис шифрования
func NewService(keys KeyProvider, alias string) *Service {
	if alias == "" {
		alias = DefaultKeyAlias
	}
	return &Service{
		keys:  keys,
		alias: alias,
	}
}

// Encrypt шифрует plaintext и возвращает непрозрачный токен
func (s *Service) Encrypt(ctx context.Context, plaintext string) (string, error) {
	handle, err := s.keys.GetOrCreateKey(ctx, s.alias)
	if err != nil {
		return "", fmt.Errorf("failed to get encryption key: %w", err)
	}

	var token string
	err = handle.WithKey(func(key []byte) error {
		var encErr error
		token, encErr = EncryptToken([]byte(plaintext), key)
		return encErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	return token, nil
}

// Decrypt расшифровывает токен. Все ошибки, включая недоступность ключа,
// возвращаются как ErrDecryption.
func (s *Service) Decrypt(ctx context.Context, token string) (string, error) {
	handle, err := s.keys.GetOrCreateKey(ctx, s.alias)
	if err != nil {
		return "", fmt.Errorf("%w: key unavailable: %v", ErrDecryption, err)
	}

	var plaintext []byte
	err = handle.WithKey(func(key []byte) error {
		var decErr error
		plaintext, decErr = DecryptToken(token, key)
		return decErr
	})
	if err != nil {
		if errors.Is(err, ErrDecryption) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(plaintext), nil
}
