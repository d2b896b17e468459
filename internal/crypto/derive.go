package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// MaxDerivedLength верхняя граница длины выводимого пароля
const MaxDerivedLength = 4096

// ErrInvalidLength возвращается при длине вне диапазона [1, MaxDerivedLength]
var ErrInvalidLength = errors.New("invalid password length")

// compatibilityPassphrase и compatibilityDigest - эталон внешнего shell-генератора:
// printf 'test' | sha256sum | xxd -r -p | base64
const (
	compatibilityPassphrase = "test"
	compatibilityDigest     = "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg="
)

// DeriveOptions настройки спецсимволов профиля.
// Принимаются для единообразия интерфейса, на результат не влияют.
type DeriveOptions struct {
	SpecialChars    string
	UseSpecialChars bool
}

// DerivePassword детерминированно выводит пароль из passphrase:
// SHA-256 -> base64 (стандартный алфавит, с padding) -> первые length символов.
// Если length больше 44, base64-строка повторяется нужное число раз.
// Результат обязан совпадать байт в байт с внешним генератором, поэтому
// алгоритм менять нельзя.
func DerivePassword(passphrase string, length int, _ DeriveOptions) (string, error) {
	if length <= 0 || length > MaxDerivedLength {
		return "", fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidLength, length, MaxDerivedLength)
	}

	digest := sha256.Sum256([]byte(passphrase))
	encoded := base64.StdEncoding.EncodeToString(digest[:])

	if length <= len(encoded) {
		return encoded[:length], nil
	}

	var b strings.Builder
	b.Grow(length)
	for b.Len() < length {
		b.WriteString(encoded[:min(len(encoded), length-b.Len())])
	}
	return b.String(), nil
}

// CheckCompatibility проверяет, что вывод совпадает с эталоном внешнего генератора
func CheckCompatibility() error {
	got, err := DerivePassword(compatibilityPassphrase, len(compatibilityDigest), DeriveOptions{})
	if err != nil {
		return fmt.Errorf("failed to derive reference password: %w", err)
	}
	if got != compatibilityDigest {
		return fmt.Errorf("derived password %q does not match reference %q", got, compatibilityDigest)
	}
	return nil
}
