package storage

import (
	"context"

	"github.com/iudanet/passkeeper/internal/models"
)

//go:generate moq -out settingsstorage_mock.go . SettingsStorage

// SettingsStorage defines interface for persisting the master secret record
type SettingsStorage interface {
	// SaveMasterRecord stores or replaces the master secret record
	SaveMasterRecord(ctx context.Context, record *models.MasterSecretRecord) error

	// GetMasterRecord retrieves the master secret record
	// Returns ErrSettingsNotFound if setup was not performed yet
	GetMasterRecord(ctx context.Context) (*models.MasterSecretRecord, error)

	// DeleteMasterRecord removes the master secret record (full reset)
	DeleteMasterRecord(ctx context.Context) error
}
