package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Алфавиты классов символов генератора
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// MinGeneratedLength минимальная длина случайного пароля
const MinGeneratedLength = 4

// ErrInvalidPolicy возвращается при недопустимых параметрах генератора
var ErrInvalidPolicy = errors.New("invalid password policy")

// Policy параметры генерации случайного пароля
type Policy struct {
	Length  int
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
}

// DefaultPolicy возвращает политику по умолчанию: 16 символов, все классы
func DefaultPolicy() Policy {
	return Policy{
		Length:  16,
		Upper:   true,
		Lower:   true,
		Numbers: true,
		Symbols: true,
	}
}

// classes возвращает алфавиты включенных классов в фиксированном порядке
func (p Policy) classes() []string {
	var classes []string
	if p.Upper {
		classes = append(classes, UppercaseChars)
	}
	if p.Lower {
		classes = append(classes, LowercaseChars)
	}
	if p.Numbers {
		classes = append(classes, NumberChars)
	}
	if p.Symbols {
		classes = append(classes, SymbolChars)
	}
	return classes
}

// Validate проверяет политику генерации
func (p Policy) Validate() error {
	if p.Length < MinGeneratedLength {
		return fmt.Errorf("%w: length must be at least %d, got %d", ErrInvalidPolicy, MinGeneratedLength, p.Length)
	}
	if len(p.classes()) == 0 {
		return fmt.Errorf("%w: at least one character class must be enabled", ErrInvalidPolicy)
	}
	return nil
}

// GeneratePassword генерирует случайный пароль по политике.
// Сначала берется по одному символу из каждого включенного класса,
// остальные позиции заполняются из общего пула, затем все перемешивается.
// Источник случайности - crypto/rand.
func GeneratePassword(p Policy) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	classes := p.classes()
	pool := strings.Join(classes, "")

	password := make([]byte, 0, p.Length)

	// По одному символу из каждого включенного класса
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Остальные позиции - из общего пула
	for len(password) < p.Length {
		c, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

// randomChar выбирает равномерно случайный символ алфавита (все алфавиты ASCII)
func randomChar(alphabet string) (byte, error) {
	i, err := randomIndex(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}

// randomIndex возвращает равномерно случайное число в [0, n)
func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random number: %w", err)
	}
	return int(v.Int64()), nil
}

// shuffle перемешивает байты алгоритмом Фишера-Йетса
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// Strength эвристическая оценка сложности пароля
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthMedium
	StrengthStrong
	StrengthVeryStrong
)

// String возвращает отображаемое название оценки
func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "Weak"
	case StrengthMedium:
		return "Medium"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// ScorePassword оценивает пароль по очкам:
// длина (+2 при >=12, +1 при >=8), +1 за каждый класс символов,
// +1 если ни один символ не встречается больше двух раз.
// Это эвристика для подсказки пользователю, а не криптографическая метрика.
func ScorePassword(password string) Strength {
	score := 0

	switch length := utf8.RuneCountInString(password); {
	case length >= 12:
		score += 2
	case length >= 8:
		score++
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	counts := make(map[rune]int)
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(SymbolChars, r) {
			hasSymbol = true
		}
		counts[r]++
	}

	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			score++
		}
	}

	repeated := false
	for _, n := range counts {
		if n > 2 {
			repeated = true
			break
		}
	}
	if !repeated {
		score++
	}

	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthMedium
	case score <= 6:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
