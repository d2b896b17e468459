// Package vault объединяет хранилища, шифрование и gate в операции над профилями и секретами.
// Все операции требуют разблокированного gate, кроме Wipe.
package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
)

// Gate проверка разблокировки (gate.Gate)
type Gate interface {
	RequireUnlocked(ctx context.Context) error
}

// Cipher шифрование паролей для хранения (crypto.Service)
type Cipher interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, token string) (string, error)
}

// Service операции над хранилищем
type Service struct {
	profiles storage.ProfileStorage
	secrets  storage.SecretStorage
	cipher   Cipher
	gate     Gate
	now      func() time.Time
}

// NewService создает сервис хранилища
func NewService(profiles storage.ProfileStorage, secrets storage.SecretStorage, cipher Cipher, gate Gate) *Service {
	return &Service{
		profiles: profiles,
		secrets:  secrets,
		cipher:   cipher,
		gate:     gate,
		now:      time.Now,
	}
}

// Wipe удаляет все профили и секреты. Используется при полном сбросе и не требует разблокировки.
func (s *Service) Wipe(ctx context.Context) error {
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, p := range profiles {
		if err := s.profiles.DeleteProfile(ctx, p.ID); err != nil && !errors.Is(err, storage.ErrProfileNotFound) {
			return fmt.Errorf("failed to delete profile %s: %w", p.ID, err)
		}
	}

	secrets, err := s.secrets.ListSecrets(ctx)
	if err != nil {
		return fmt.Errorf("failed to list secrets: %w", err)
	}
	for _, sec := range secrets {
		if err := s.secrets.DeleteSecret(ctx, sec.ID); err != nil && !errors.Is(err, storage.ErrSecretNotFound) {
			return fmt.Errorf("failed to delete secret %s: %w", sec.ID, err)
		}
	}

	slog.Warn("vault wiped", "profiles", len(profiles), "secrets", len(secrets))
	return nil
}

// timestamp текущее время с точностью до миллисекунд (так хранится в sqlite)
func (s *Service) timestamp() time.Time {
	return s.now().Truncate(time.Millisecond)
}

func newID() string {
	return uuid.New().String()
}

func categoryOrDefault(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return models.DefaultCategory
}
