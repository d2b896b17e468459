package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id для ключа-обертки хранилища ключей
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного ключа в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 32
	// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
	NonceSize = 12
)

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateKey генерирует случайный ключ шифрования (32 bytes)
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

// DeriveWrappingKey выводит ключ-обертку из секрета устройства через Argon2id
func DeriveWrappingKey(deviceSecret, salt []byte) ([]byte, error) {
	if len(deviceSecret) == 0 {
		return nil, fmt.Errorf("device secret cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	return argon2.IDKey(deviceSecret, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen), nil
}

// WrapKey шифрует ключ с помощью AES-256-GCM.
// alias передается как associated data, поэтому обертку нельзя переставить на другой alias.
// Формат результата: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
func WrapKey(key, wrappingKey []byte, alias string) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("key cannot be empty")
	}

	aesGCM, err := newGCM(wrappingKey)
	if err != nil {
		return nil, err
	}

	// Генерируем случайный nonce
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// GCM автоматически добавляет authentication tag в конец
	ciphertext := aesGCM.Seal(nil, nonce, key, []byte(alias))

	result := make([]byte, 0, len(nonce)+len(ciphertext))
	result = append(result, nonce...)
	result = append(result, ciphertext...)

	return result, nil
}

// UnwrapKey расшифровывает ключ, обернутый WrapKey
func UnwrapKey(wrapped, wrappingKey []byte, alias string) ([]byte, error) {
	if len(wrapped) < NonceSize {
		return nil, fmt.Errorf("wrapped key too short")
	}

	aesGCM, err := newGCM(wrappingKey)
	if err != nil {
		return nil, err
	}

	key, err := aesGCM.Open(nil, wrapped[:NonceSize], wrapped[NonceSize:], []byte(alias))
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap key: authentication failed or corrupted data: %w", err)
	}

	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM, nil
}
