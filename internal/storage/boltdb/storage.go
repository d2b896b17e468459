package boltdb

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/passkeeper/internal/storage"
)

// lockTimeout сколько ждать файловую блокировку базы, если ее держит другой процесс passkeeper
const lockTimeout = 2 * time.Second

var (
	// Профили учетных записей
	bucketProfiles = []byte("profiles")
	// Запись мастер-пароля и соль хранилища ключей
	bucketSettings = []byte("settings")
	// Обернутые ключи хранилища ключей
	bucketKeys = []byte("keys")
)

// Storage хранит профили, настройки gate и обернутые ключи в одном файле BoltDB
type Storage struct {
	db *bbolt.DB
	// mu защищает db: транзакции держат RLock, Close ждет их завершения под Lock
	mu sync.RWMutex
}

// New открывает (или создает) файл базы с правами 0600 и создает buckets
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: lockTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, fmt.Errorf("database %s is locked by another process: %w", dbPath, err)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketProfiles, bucketSettings, bucketKeys} {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	}); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to initialize buckets: %w", err), db.Close())
	}

	return &Storage{db: db}, nil
}

// Close закрывает базу; повторный вызов ничего не делает
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// view и update возвращают ErrStorageClosed после Close вместо паники на nil db
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}

func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}
