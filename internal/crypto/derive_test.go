package crypto

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePassword(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       string
		length     int
	}{
		{
			name:       "reference vector",
			passphrase: "test",
			length:     43,
			want:       "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg",
		},
		{
			name:       "full digest with padding",
			passphrase: "test",
			length:     44,
			want:       "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg=",
		},
		{
			name:       "short password",
			passphrase: "test",
			length:     8,
			want:       "n4bQgYhM",
		},
		{
			name:       "empty passphrase",
			passphrase: "",
			length:     10,
			want:       "47DEQpj8HB",
		},
		{
			name:       "unicode passphrase",
			passphrase: "пароль",
			length:     16,
			want:       "LbxXTaylJomiT7YO",
		},
		{
			name:       "single character",
			passphrase: "correct horse battery staple",
			length:     1,
			want:       "x",
		},
		{
			name:       "longer than digest repeats it",
			passphrase: "test",
			length:     50,
			want:       "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg=n4bQgY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DerivePassword(tt.passphrase, tt.length, DeriveOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.length)
		})
	}
}

func TestDerivePassword_InvalidLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "zero", length: 0},
		{name: "negative", length: -1},
		{name: "min int", length: math.MinInt},
		{name: "above max", length: MaxDerivedLength + 1},
		// Ранее переполняло length/44+1 и роняло процесс
		{name: "max int", length: math.MaxInt},
		{name: "max int minus one", length: math.MaxInt - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got string
				err error
			)
			require.NotPanics(t, func() {
				got, err = DerivePassword("test", tt.length, DeriveOptions{})
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLength)
			assert.Empty(t, got)
		})
	}
}

func TestDerivePassword_UpperBound(t *testing.T) {
	const digest = "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg="

	got, err := DerivePassword("test", MaxDerivedLength, DeriveOptions{})
	require.NoError(t, err)
	assert.Len(t, got, MaxDerivedLength)
	assert.Equal(t, strings.Repeat(digest, MaxDerivedLength/len(digest)+1)[:MaxDerivedLength], got)
}

func TestDerivePassword_MaxLength(t *testing.T) {
	const digest = "n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg="

	got, err := DerivePassword("test", 128, DeriveOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 128)
	assert.Equal(t, strings.Repeat(digest, 3)[:128], got)
}

func TestDerivePassword_PrefixProperty(t *testing.T) {
	// Для n1 <= n2 <= 44 derive(p, n2) начинается с derive(p, n1)
	passphrases := []string{"", "test", "correct horse battery staple", "пароль"}

	for _, p := range passphrases {
		for n2 := 1; n2 <= 44; n2++ {
			long, err := DerivePassword(p, n2, DeriveOptions{})
			require.NoError(t, err)

			for n1 := 1; n1 <= n2; n1++ {
				short, err := DerivePassword(p, n1, DeriveOptions{})
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(long, short), "passphrase %q: %d is not a prefix of %d", p, n1, n2)
			}
		}
	}
}

func TestDerivePassword_Deterministic(t *testing.T) {
	first, err := DerivePassword("my secret phrase", 20, DeriveOptions{})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := DerivePassword("my secret phrase", 20, DeriveOptions{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDerivePassword_OptionsIgnored(t *testing.T) {
	plain, err := DerivePassword("test", 32, DeriveOptions{})
	require.NoError(t, err)

	withSpecial, err := DerivePassword("test", 32, DeriveOptions{UseSpecialChars: true, SpecialChars: "!?"})
	require.NoError(t, err)

	assert.Equal(t, plain, withSpecial, "настройки спецсимволов не должны влиять на вывод")
}

func TestCheckCompatibility(t *testing.T) {
	assert.NoError(t, CheckCompatibility())
}
