// Package keystore хранит ключи шифрования вне досягаемости остального кода.
//
// Ключи создаются по alias при первом обращении, хранятся на диске только в
// обернутом виде (AES-256-GCM ключом, выведенным из секрета устройства через
// Argon2id) и в памяти только внутри memguard.Enclave. Наружу выдается
// crypto.KeyHandle, сырые байты видны лишь внутри WithKey.
package keystore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/storage"
)

// ErrEmptyAlias возвращается при запросе ключа без alias
var ErrEmptyAlias = errors.New("key alias cannot be empty")

// Keystore реализует crypto.KeyProvider
type Keystore struct {
	store        storage.KeyStorage
	deviceSecret *memguard.Enclave
	wrappingKey  *memguard.Enclave
	keys         map[string]*memguard.Enclave
	mu           sync.RWMutex
}

var _ crypto.KeyProvider = (*Keystore)(nil)

// New создает хранилище ключей.
// deviceSecret копируется в enclave и затирается в исходном срезе.
func New(store storage.KeyStorage, deviceSecret []byte) (*Keystore, error) {
	if len(deviceSecret) == 0 {
		return nil, fmt.Errorf("device secret cannot be empty")
	}

	return &Keystore{
		store:        store,
		deviceSecret: memguard.NewEnclave(deviceSecret),
		keys:         make(map[string]*memguard.Enclave),
	}, nil
}

// GetOrCreateKey возвращает ключ для alias, создавая и сохраняя его при первом обращении
func (k *Keystore) GetOrCreateKey(ctx context.Context, alias string) (crypto.KeyHandle, error) {
	if alias == "" {
		return nil, ErrEmptyAlias
	}

	k.mu.RLock()
	enclave, ok := k.keys[alias]
	k.mu.RUnlock()
	if ok {
		return &keyHandle{enclave: enclave}, nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	// Повторная проверка: ключ мог быть загружен параллельно
	if enclave, ok := k.keys[alias]; ok {
		return &keyHandle{enclave: enclave}, nil
	}

	enclave, err := k.loadOrCreate(ctx, alias)
	if err != nil {
		return nil, err
	}

	k.keys[alias] = enclave
	return &keyHandle{enclave: enclave}, nil
}

// DeleteKey удаляет ключ. Все, что было им зашифровано, становится нерасшифровываемым.
func (k *Keystore) DeleteKey(ctx context.Context, alias string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.store.DeleteWrappedKey(ctx, alias); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", alias, err)
	}
	delete(k.keys, alias)

	slog.Debug("key deleted", "alias", alias)
	return nil
}

// Forget сбрасывает кэш ключей в памяти, на диске ничего не меняется
func (k *Keystore) Forget() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.keys = make(map[string]*memguard.Enclave)
	k.wrappingKey = nil
}

// loadOrCreate вызывается под k.mu
func (k *Keystore) loadOrCreate(ctx context.Context, alias string) (*memguard.Enclave, error) {
	wrapBuf, err := k.openWrappingKey(ctx)
	if err != nil {
		return nil, err
	}
	defer wrapBuf.Destroy()

	wrapped, err := k.store.GetWrappedKey(ctx, alias)
	switch {
	case err == nil:
		key, err := crypto.UnwrapKey(wrapped, wrapBuf.Bytes(), alias)
		if err != nil {
			return nil, fmt.Errorf("failed to load key %q: %w", alias, err)
		}
		return memguard.NewEnclave(key), nil

	case errors.Is(err, storage.ErrKeyNotFound):
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}

		wrapped, err := crypto.WrapKey(key, wrapBuf.Bytes(), alias)
		if err != nil {
			memguard.WipeBytes(key)
			return nil, fmt.Errorf("failed to wrap key %q: %w", alias, err)
		}

		if err := k.store.SaveWrappedKey(ctx, alias, wrapped); err != nil {
			memguard.WipeBytes(key)
			return nil, fmt.Errorf("failed to save key %q: %w", alias, err)
		}

		slog.Debug("key created", "alias", alias)
		return memguard.NewEnclave(key), nil

	default:
		return nil, fmt.Errorf("failed to read key %q: %w", alias, err)
	}
}

// openWrappingKey выводит (один раз) ключ-обертку и возвращает открытый буфер.
// Вызывающий обязан вызвать Destroy.
func (k *Keystore) openWrappingKey(ctx context.Context) (*memguard.LockedBuffer, error) {
	if k.wrappingKey == nil {
		salt, err := k.store.GetKeystoreSalt(ctx)
		if errors.Is(err, storage.ErrKeyNotFound) {
			salt, err = crypto.GenerateSalt()
			if err != nil {
				return nil, err
			}
			if err := k.store.SaveKeystoreSalt(ctx, salt); err != nil {
				return nil, fmt.Errorf("failed to save keystore salt: %w", err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("failed to read keystore salt: %w", err)
		}

		secret, err := k.deviceSecret.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open device secret: %w", err)
		}
		wrappingKey, err := crypto.DeriveWrappingKey(secret.Bytes(), salt)
		secret.Destroy()
		if err != nil {
			return nil, fmt.Errorf("failed to derive wrapping key: %w", err)
		}

		k.wrappingKey = memguard.NewEnclave(wrappingKey)
	}

	buf, err := k.wrappingKey.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open wrapping key: %w", err)
	}
	return buf, nil
}

// keyHandle выдает ключ только на время вызова fn
type keyHandle struct {
	enclave *memguard.Enclave
}

func (h *keyHandle) WithKey(fn func(key []byte) error) error {
	buf, err := h.enclave.Open()
	if err != nil {
		return fmt.Errorf("failed to open key: %w", err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}
