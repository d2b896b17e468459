package storage

import "context"

// KeyStorage defines interface for persisting wrapped (encrypted) keys.
// Raw key material never reaches this layer.
type KeyStorage interface {
	// SaveWrappedKey stores wrapped key material under alias
	SaveWrappedKey(ctx context.Context, alias string, wrapped []byte) error

	// GetWrappedKey retrieves wrapped key material
	// Returns ErrKeyNotFound if alias doesn't exist
	GetWrappedKey(ctx context.Context, alias string) ([]byte, error)

	// DeleteWrappedKey removes wrapped key material, missing alias is not an error
	DeleteWrappedKey(ctx context.Context, alias string) error

	// GetKeystoreSalt returns the salt used to derive the wrapping key
	// Returns ErrKeyNotFound if salt was not created yet
	GetKeystoreSalt(ctx context.Context) ([]byte, error)

	// SaveKeystoreSalt stores the wrapping key salt
	SaveKeystoreSalt(ctx context.Context, salt []byte) error
}
