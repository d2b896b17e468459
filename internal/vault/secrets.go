package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
	"github.com/iudanet/passkeeper/internal/validation"
)

// ErrEmptyPassword секрет без пароля
var ErrEmptyPassword = errors.New("password cannot be empty")

// SecretInput данные секрета от пользователя. Password в открытом виде, в хранилище не попадает.
type SecretInput struct {
	Title    string
	Website  string
	Username string
	Password string
	Notes    string
	Category string
}

// AddSecret шифрует пароль и сохраняет новый секрет
func (s *Service) AddSecret(ctx context.Context, in SecretInput) (*models.StoredSecret, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, ErrEmptyPassword
	}

	now := s.timestamp()
	secret := &models.StoredSecret{
		ID:        newID(),
		Title:     in.Title,
		Website:   in.Website,
		Username:  in.Username,
		Notes:     in.Notes,
		Category:  categoryOrDefault(in.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := validation.ValidateSecret(secret); err != nil {
		return nil, err
	}

	token, err := s.cipher.Encrypt(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt password: %w", err)
	}
	secret.EncryptedPassword = token

	if err := s.secrets.CreateSecret(ctx, secret); err != nil {
		return nil, fmt.Errorf("failed to save secret: %w", err)
	}

	slog.Debug("secret added", "id", secret.ID)
	return secret, nil
}

// UpdateSecret обновляет секрет. Пустой Password оставляет сохраненный пароль.
// Возвращает storage.ErrSecretNotFound, если секрета нет.
func (s *Service) UpdateSecret(ctx context.Context, id string, in SecretInput) (*models.StoredSecret, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}

	secret, err := s.secrets.GetSecret(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load secret: %w", err)
	}

	secret.Title = in.Title
	secret.Website = in.Website
	secret.Username = in.Username
	secret.Notes = in.Notes
	secret.Category = categoryOrDefault(in.Category)
	if err := validation.ValidateSecret(secret); err != nil {
		return nil, err
	}

	if in.Password != "" {
		token, err := s.cipher.Encrypt(ctx, in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt password: %w", err)
		}
		secret.EncryptedPassword = token
	}
	secret.UpdatedAt = s.timestamp()

	if err := s.secrets.UpdateSecret(ctx, secret); err != nil {
		return nil, fmt.Errorf("failed to update secret: %w", err)
	}

	return secret, nil
}

// GetSecret возвращает секрет без расшифровки; found=false, если секрета нет
func (s *Service) GetSecret(ctx context.Context, id string) (*models.StoredSecret, bool, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, false, err
	}

	secret, err := s.secrets.GetSecret(ctx, id)
	if errors.Is(err, storage.ErrSecretNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get secret: %w", err)
	}

	return secret, true, nil
}

// ListSecrets возвращает все секреты, последние измененные первыми
func (s *Service) ListSecrets(ctx context.Context) ([]*models.StoredSecret, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.secrets.ListSecrets(ctx)
}

// SearchSecrets ищет по title, website и username
func (s *Service) SearchSecrets(ctx context.Context, query string) ([]*models.StoredSecret, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.secrets.SearchSecrets(ctx, query)
}

// ListSecretsByCategory возвращает секреты категории
func (s *Service) ListSecretsByCategory(ctx context.Context, category string) ([]*models.StoredSecret, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.secrets.ListSecretsByCategory(ctx, category)
}

// RevealPassword расшифровывает пароль секрета; found=false, если секрета нет.
// Ошибка расшифровки (crypto.ErrDecryption) возвращается как есть, без пустой подстановки.
func (s *Service) RevealPassword(ctx context.Context, id string) (string, bool, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return "", false, err
	}

	secret, err := s.secrets.GetSecret(ctx, id)
	if errors.Is(err, storage.ErrSecretNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get secret: %w", err)
	}

	password, err := s.cipher.Decrypt(ctx, secret.EncryptedPassword)
	if err != nil {
		slog.Warn("failed to decrypt secret", "id", id, "error", err)
		return "", true, fmt.Errorf("failed to decrypt secret %s: %w", id, err)
	}

	return password, true, nil
}

// DeleteSecret удаляет секрет; found=false, если секрета не было
func (s *Service) DeleteSecret(ctx context.Context, id string) (bool, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return false, err
	}

	err := s.secrets.DeleteSecret(ctx, id)
	if errors.Is(err, storage.ErrSecretNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete secret: %w", err)
	}

	slog.Debug("secret deleted", "id", id)
	return true, nil
}
