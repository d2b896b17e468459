package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrHashMismatch возвращается, если passphrase не соответствует сохраненному хешу
var ErrHashMismatch = errors.New("passphrase does not match stored hash")

// HashPassphrase хеширует мастер-пароль тем же SHA-256, что и DerivePassword,
// и возвращает lowercase hex (64 символа)
func HashPassphrase(passphrase string) string {
	hash := sha256.Sum256([]byte(passphrase))
	return hex.EncodeToString(hash[:])
}

// VerifyPassphrase сравнивает хеш passphrase с сохраненным за постоянное время
func VerifyPassphrase(passphrase, hashedPassphrase string) error {
	if hashedPassphrase == "" {
		return fmt.Errorf("hashed passphrase cannot be empty")
	}

	computed := HashPassphrase(passphrase)
	stored := strings.ToLower(hashedPassphrase)

	if subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) != 1 {
		return ErrHashMismatch
	}

	return nil
}
