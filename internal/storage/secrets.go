package storage

import (
	"context"

	"github.com/iudanet/passkeeper/internal/models"
)

// SecretStorage defines interface for storing secret records.
// EncryptedPassword is stored as-is, this layer never encrypts or decrypts.
type SecretStorage interface {
	// CreateSecret inserts a new secret
	// Returns ErrSecretAlreadyExists if ID is taken
	CreateSecret(ctx context.Context, secret *models.StoredSecret) error

	// UpdateSecret replaces an existing secret
	// Returns ErrSecretNotFound if secret doesn't exist
	UpdateSecret(ctx context.Context, secret *models.StoredSecret) error

	// GetSecret retrieves a secret by ID
	// Returns ErrSecretNotFound if secret doesn't exist
	GetSecret(ctx context.Context, id string) (*models.StoredSecret, error)

	// ListSecrets returns all secrets ordered by UpdatedAt descending
	ListSecrets(ctx context.Context) ([]*models.StoredSecret, error)

	// SearchSecrets returns secrets whose title, website or username contains the query
	SearchSecrets(ctx context.Context, query string) ([]*models.StoredSecret, error)

	// ListSecretsByCategory returns secrets of the category ordered by UpdatedAt descending
	ListSecretsByCategory(ctx context.Context, category string) ([]*models.StoredSecret, error)

	// DeleteSecret removes a secret
	// Returns ErrSecretNotFound if secret doesn't exist
	DeleteSecret(ctx context.Context, id string) error
}
