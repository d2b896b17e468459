package storage

import (
	"context"

	"github.com/iudanet/passkeeper/internal/models"
)

//go:generate moq -out profilestorage_mock.go . ProfileStorage

// ProfileStorage defines interface for storing credential profiles
type ProfileStorage interface {
	// SaveProfile inserts or replaces a profile by ID
	SaveProfile(ctx context.Context, profile *models.CredentialProfile) error

	// GetProfile retrieves a profile by ID
	// Returns ErrProfileNotFound if profile doesn't exist
	GetProfile(ctx context.Context, id string) (*models.CredentialProfile, error)

	// ListProfiles returns all profiles ordered by UpdatedAt descending
	ListProfiles(ctx context.Context) ([]*models.CredentialProfile, error)

	// SearchProfiles returns profiles whose title, website or username contains
	// the query (case-insensitive), ordered by UpdatedAt descending
	SearchProfiles(ctx context.Context, query string) ([]*models.CredentialProfile, error)

	// ListProfilesByCategory returns profiles of the category ordered by UpdatedAt descending
	ListProfilesByCategory(ctx context.Context, category string) ([]*models.CredentialProfile, error)

	// ListCategories returns distinct profile categories sorted by name
	ListCategories(ctx context.Context) ([]string, error)

	// DeleteProfile removes a profile
	// Returns ErrProfileNotFound if profile doesn't exist
	DeleteProfile(ctx context.Context, id string) error
}
