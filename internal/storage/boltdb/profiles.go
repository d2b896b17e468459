package boltdb

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
)

// SaveProfile stores or updates a profile
func (s *Storage) SaveProfile(ctx context.Context, profile *models.CredentialProfile) error {
	if profile.ID == "" {
		return fmt.Errorf("profile ID cannot be empty")
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		// Сериализуем профиль в JSON
		data, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}

		// Сохраняем по ID
		if err := bucket.Put([]byte(profile.ID), data); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		return nil
	})
}

// GetProfile retrieves a profile by ID
func (s *Storage) GetProfile(ctx context.Context, id string) (*models.CredentialProfile, error) {
	var profile *models.CredentialProfile

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrProfileNotFound
		}

		profile = &models.CredentialProfile{}
		if err := json.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("failed to unmarshal profile: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ListProfiles returns all profiles, most recently updated first
func (s *Storage) ListProfiles(ctx context.Context) ([]*models.CredentialProfile, error) {
	return s.filterProfiles(func(*models.CredentialProfile) bool { return true })
}

// SearchProfiles returns profiles whose title, website or username contains query
func (s *Storage) SearchProfiles(ctx context.Context, query string) ([]*models.CredentialProfile, error) {
	q := strings.ToLower(query)
	return s.filterProfiles(func(p *models.CredentialProfile) bool {
		return strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Website), q) ||
			strings.Contains(strings.ToLower(p.Username), q)
	})
}

// ListProfilesByCategory returns profiles of the given category
func (s *Storage) ListProfilesByCategory(ctx context.Context, category string) ([]*models.CredentialProfile, error) {
	return s.filterProfiles(func(p *models.CredentialProfile) bool {
		return p.Category == category
	})
}

// ListCategories returns distinct non-empty categories sorted by name
func (s *Storage) ListCategories(ctx context.Context) ([]string, error) {
	profiles, err := s.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(profiles))
	for _, p := range profiles {
		if p.Category != "" {
			categories = append(categories, p.Category)
		}
	}
	slices.Sort(categories)

	return slices.Compact(categories), nil
}

// DeleteProfile removes a profile
func (s *Storage) DeleteProfile(ctx context.Context, id string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrProfileNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		return nil
	})
}

// filterProfiles проходит по bucket и возвращает подходящие профили,
// отсортированные по UpdatedAt по убыванию
func (s *Storage) filterProfiles(match func(*models.CredentialProfile) bool) ([]*models.CredentialProfile, error) {
	var profiles []*models.CredentialProfile

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfiles)
		if bucket == nil {
			return fmt.Errorf("profiles bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			profile := &models.CredentialProfile{}
			if err := json.Unmarshal(v, profile); err != nil {
				return fmt.Errorf("failed to unmarshal profile: %w", err)
			}

			if match(profile) {
				profiles = append(profiles, profile)
			}

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	// ForEach идет по ключам, при равном UpdatedAt порядок остается по ID
	slices.SortStableFunc(profiles, func(a, b *models.CredentialProfile) int {
		return cmp.Compare(b.UpdatedAt.UnixNano(), a.UpdatedAt.UnixNano())
	})

	return profiles, nil
}
