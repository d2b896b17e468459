package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
)

var (
	masterRecordKey = []byte("master")
	keystoreSaltKey = []byte("keystore_salt")
)

// SaveMasterRecord stores the master secret record
func (s *Storage) SaveMasterRecord(ctx context.Context, record *models.MasterSecretRecord) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal master record: %w", err)
		}

		if err := bucket.Put(masterRecordKey, data); err != nil {
			return fmt.Errorf("failed to save master record: %w", err)
		}

		return nil
	})
}

// GetMasterRecord retrieves the master secret record
func (s *Storage) GetMasterRecord(ctx context.Context) (*models.MasterSecretRecord, error) {
	var record *models.MasterSecretRecord

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(masterRecordKey)
		if data == nil {
			return storage.ErrSettingsNotFound
		}

		record = &models.MasterSecretRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("failed to unmarshal master record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteMasterRecord removes the master secret record
func (s *Storage) DeleteMasterRecord(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Delete(masterRecordKey); err != nil {
			return fmt.Errorf("failed to delete master record: %w", err)
		}

		return nil
	})
}

// GetKeystoreSalt returns the keystore wrapping salt
func (s *Storage) GetKeystoreSalt(ctx context.Context) ([]byte, error) {
	var salt []byte

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		data := bucket.Get(keystoreSaltKey)
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// Данные bbolt валидны только внутри транзакции
		salt = append([]byte(nil), data...)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return salt, nil
}

// SaveKeystoreSalt stores the keystore wrapping salt
func (s *Storage) SaveKeystoreSalt(ctx context.Context, salt []byte) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		if err := bucket.Put(keystoreSaltKey, salt); err != nil {
			return fmt.Errorf("failed to save keystore salt: %w", err)
		}

		return nil
	})
}
