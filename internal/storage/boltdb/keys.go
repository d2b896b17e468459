package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/passkeeper/internal/storage"
)

// SaveWrappedKey stores wrapped key material under alias
func (s *Storage) SaveWrappedKey(ctx context.Context, alias string, wrapped []byte) error {
	if alias == "" {
		return fmt.Errorf("key alias cannot be empty")
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKeys)
		if bucket == nil {
			return fmt.Errorf("keys bucket not found")
		}

		if err := bucket.Put([]byte(alias), wrapped); err != nil {
			return fmt.Errorf("failed to save wrapped key: %w", err)
		}

		return nil
	})
}

// GetWrappedKey retrieves wrapped key material
func (s *Storage) GetWrappedKey(ctx context.Context, alias string) ([]byte, error) {
	var wrapped []byte

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKeys)
		if bucket == nil {
			return fmt.Errorf("keys bucket not found")
		}

		data := bucket.Get([]byte(alias))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		wrapped = append([]byte(nil), data...)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return wrapped, nil
}

// DeleteWrappedKey removes wrapped key material
func (s *Storage) DeleteWrappedKey(ctx context.Context, alias string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketKeys)
		if bucket == nil {
			return fmt.Errorf("keys bucket not found")
		}

		if err := bucket.Delete([]byte(alias)); err != nil {
			return fmt.Errorf("failed to delete wrapped key: %w", err)
		}

		return nil
	})
}
