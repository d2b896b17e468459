package storage

import "errors"

// Common storage errors
var (
	// ErrProfileNotFound indicates that credential profile was not found
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSecretNotFound indicates that secret was not found
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretAlreadyExists indicates that secret with the same ID already exists
	ErrSecretAlreadyExists = errors.New("secret already exists")

	// ErrSettingsNotFound indicates that master secret record does not exist yet
	ErrSettingsNotFound = errors.New("master secret record not found")

	// ErrKeyNotFound indicates that no wrapped key exists for the alias
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
