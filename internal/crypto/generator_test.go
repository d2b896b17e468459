package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "default policy", policy: DefaultPolicy()},
		{name: "minimum length all classes", policy: Policy{Length: 4, Upper: true, Lower: true, Numbers: true, Symbols: true}},
		{name: "only digits", policy: Policy{Length: 6, Numbers: true}},
		{name: "letters only", policy: Policy{Length: 12, Upper: true, Lower: true}},
		{name: "symbols and lowercase", policy: Policy{Length: 20, Lower: true, Symbols: true}},
		{name: "long password", policy: Policy{Length: 128, Upper: true, Lower: true, Numbers: true, Symbols: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Повторяем, чтобы поймать случайные пропуски классов
			for i := 0; i < 50; i++ {
				password, err := GeneratePassword(tt.policy)
				require.NoError(t, err)
				assert.Len(t, password, tt.policy.Length)

				assertClass(t, password, UppercaseChars, tt.policy.Upper)
				assertClass(t, password, LowercaseChars, tt.policy.Lower)
				assertClass(t, password, NumberChars, tt.policy.Numbers)
				assertClass(t, password, SymbolChars, tt.policy.Symbols)
			}
		})
	}
}

// assertClass проверяет наличие класса, если он включен, и отсутствие, если выключен
func assertClass(t *testing.T, password, alphabet string, enabled bool) {
	t.Helper()
	has := strings.ContainsAny(password, alphabet)
	if enabled {
		assert.True(t, has, "password %q must contain a character from %q", password, alphabet)
	} else {
		assert.False(t, has, "password %q must not contain characters from %q", password, alphabet)
	}
}

func TestGeneratePassword_InvalidPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "too short", policy: Policy{Length: 3, Upper: true, Lower: true, Numbers: true, Symbols: true}},
		{name: "zero length", policy: Policy{Length: 0, Lower: true}},
		{name: "no classes", policy: Policy{Length: 16}},
		{name: "no classes long", policy: Policy{Length: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := GeneratePassword(tt.policy)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPolicy)
			assert.Empty(t, password)
		})
	}
}

func TestGeneratePassword_Randomness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		password, err := GeneratePassword(DefaultPolicy())
		require.NoError(t, err)
		assert.False(t, seen[password], "generated duplicate password %q", password)
		seen[password] = true
	}
}

func TestScorePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     Strength
	}{
		// 0 (длина) + 1 (lower) + 0 (повторы) = 1
		{name: "repeated lowercase", password: "aaaa", want: StrengthWeak},
		// 0 + 0 + 1 (без повторов) = 1
		{name: "empty", password: "", want: StrengthWeak},
		// 0 + 1 (lower) + 1 = 2
		{name: "short unique", password: "abc", want: StrengthWeak},
		// 1 (>=8) + 1 (lower) + 1 = 3
		{name: "eight lowercase", password: "abcdefgh", want: StrengthMedium},
		// 1 + 2 (lower, digit) + 1 = 4
		{name: "letters and digits", password: "abcd1234", want: StrengthMedium},
		// 2 (>=12) + 2 (upper, lower) + 1 = 5
		{name: "long mixed case", password: "ABCDEFabcdef", want: StrengthStrong},
		// 1 + 4 + 1 = 6
		{name: "eight all classes", password: "Ab1!Cd2@", want: StrengthStrong},
		// 2 + 4 + 1 = 7
		{name: "long all classes", password: "Ab1!Cd2@Ef3#", want: StrengthVeryStrong},
		// 2 + 4 + 0 = 6
		{name: "long all classes with repeats", password: "Aaaa1!Cd2@Ef3#", want: StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScorePassword(tt.password))
		})
	}
}

func TestScorePassword_GeneratedDefault(t *testing.T) {
	// 16 символов со всеми классами дают минимум Strong
	password, err := GeneratePassword(DefaultPolicy())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ScorePassword(password), StrengthStrong)
}

func TestStrength_String(t *testing.T) {
	assert.Equal(t, "Weak", StrengthWeak.String())
	assert.Equal(t, "Medium", StrengthMedium.String())
	assert.Equal(t, "Strong", StrengthStrong.String())
	assert.Equal(t, "Very strong", StrengthVeryStrong.String())
	assert.Equal(t, "Strength(9)", Strength(9).String())
}
