package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize - размер ключа шифрования (AES-256)
	KeySize = 32
	// IVSize - размер вектора инициализации CBC (один блок AES)
	IVSize = aes.BlockSize
	// TagSize - размер HMAC-SHA256 тега
	TagSize = sha256.Size

	minTokenSize = IVSize + aes.BlockSize + TagSize
)

// tokenKeyInfo контекст HKDF для подключей токена
var tokenKeyInfo = []byte("passkeeper token v1")

// ErrDecryption возвращается для поврежденных, подмененных или чужих токенов
var ErrDecryption = errors.New("failed to decrypt token")

// EncryptToken шифрует данные AES-256-CBC с PKCS#7 padding.
// Формат результата: base64(IV (16 bytes) + ciphertext + HMAC-SHA256 (32 bytes)).
// IV генерируется заново для каждого вызова.
func EncryptToken(plaintext, key []byte) (string, error) {
	encKey, macKey, err := tokenKeys(key)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	// Генерируем случайный IV
	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	// Формируем результат: IV + ciphertext + tag
	result := make([]byte, IVSize+len(padded), IVSize+len(padded)+TagSize)
	copy(result, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(result[IVSize:], padded)

	result = append(result, sign(macKey, result)...)

	return base64.StdEncoding.EncodeToString(result), nil
}

// DecryptToken дешифрует токен, созданный EncryptToken.
// Любая ошибка (base64, длина, тег, padding, ключ) оборачивает ErrDecryption.
func DecryptToken(token string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode base64: %v", ErrDecryption, err)
	}
	if len(raw) < minTokenSize {
		return nil, fmt.Errorf("%w: token too short", ErrDecryption)
	}

	body, tag := raw[:len(raw)-TagSize], raw[len(raw)-TagSize:]
	if (len(body)-IVSize)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecryption)
	}

	encKey, macKey, err := tokenKeys(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	// Проверяем тег до расшифровки
	if !hmac.Equal(tag, sign(macKey, body)) {
		return nil, fmt.Errorf("%w: authentication failed or corrupted data", ErrDecryption)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create cipher: %v", ErrDecryption, err)
	}

	iv, ciphertext := body[:IVSize], body[IVSize:]
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return plaintext, nil
}

// tokenKeys выводит из ключа независимые подключи шифрования и MAC (HKDF-SHA256)
func tokenKeys(key []byte) (encKey, macKey []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	material := make([]byte, 2*KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, tokenKeyInfo), material); err != nil {
		return nil, nil, fmt.Errorf("failed to derive token keys: %w", err)
	}

	return material[:KeySize], material[KeySize:], nil
}

func sign(macKey, data []byte) []byte {
	h := hmac.New(sha256.New, macKey)
	h.Write(data)
	return h.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded data length %d", len(data))
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}

	return data[:len(data)-n], nil
}
