package vault

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
	"github.com/iudanet/passkeeper/internal/validation"
)

// AddProfile сохраняет новый профиль: присваивает ID и время, подставляет значения по умолчанию
func (s *Service) AddProfile(ctx context.Context, p *models.CredentialProfile) error {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return err
	}

	if p.PasswordLength == 0 {
		p.PasswordLength = models.DefaultPasswordLength
	}
	p.Category = categoryOrDefault(p.Category)

	if err := validation.ValidateProfile(p); err != nil {
		return err
	}

	now := s.timestamp()
	p.ID = newID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.profiles.SaveProfile(ctx, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	slog.Debug("profile added", "id", p.ID)
	return nil
}

// UpdateProfile перезаписывает существующий профиль, CreatedAt сохраняется, UpdatedAt обновляется.
// Возвращает storage.ErrProfileNotFound, если профиля нет.
func (s *Service) UpdateProfile(ctx context.Context, p *models.CredentialProfile) error {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return err
	}

	existing, err := s.profiles.GetProfile(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	p.Category = categoryOrDefault(p.Category)
	if err := validation.ValidateProfile(p); err != nil {
		return err
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.timestamp()

	if err := s.profiles.SaveProfile(ctx, p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile возвращает профиль; found=false, если профиля нет
func (s *Service) GetProfile(ctx context.Context, id string) (*models.CredentialProfile, bool, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, false, err
	}

	p, err := s.profiles.GetProfile(ctx, id)
	if errors.Is(err, storage.ErrProfileNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, true, nil
}

// ListProfiles возвращает все профили, последние измененные первыми
func (s *Service) ListProfiles(ctx context.Context) ([]*models.CredentialProfile, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.profiles.ListProfiles(ctx)
}

// SearchProfiles ищет по title, website и username без учета регистра
func (s *Service) SearchProfiles(ctx context.Context, query string) ([]*models.CredentialProfile, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.profiles.SearchProfiles(ctx, query)
}

// ListProfilesByCategory возвращает профили категории
func (s *Service) ListProfilesByCategory(ctx context.Context, category string) ([]*models.CredentialProfile, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.profiles.ListProfilesByCategory(ctx, category)
}

// ListCategories возвращает категории профилей
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}
	return s.profiles.ListCategories(ctx)
}

// DeleteProfile удаляет профиль; found=false, если профиля не было
func (s *Service) DeleteProfile(ctx context.Context, id string) (bool, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return false, err
	}

	err := s.profiles.DeleteProfile(ctx, id)
	if errors.Is(err, storage.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}

	slog.Debug("profile deleted", "id", id)
	return true, nil
}

// DeriveForProfile выводит пароль профиля из passphrase с длиной профиля.
// Возвращает storage.ErrProfileNotFound, если профиля нет.
func (s *Service) DeriveForProfile(ctx context.Context, id, passphrase string) (string, error) {
	if err := s.gate.RequireUnlocked(ctx); err != nil {
		return "", err
	}

	p, err := s.profiles.GetProfile(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	return crypto.DerivePassword(passphrase, p.PasswordLength, crypto.DeriveOptions{
		SpecialChars:    p.SpecialChars,
		UseSpecialChars: p.UseSpecialChars,
	})
}
