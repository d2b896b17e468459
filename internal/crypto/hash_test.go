package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassphrase(t *testing.T) {
	hash := HashPassphrase("correct horse battery staple")

	// SHA256 хеш всегда 64 символа (hex-encoded, 32 bytes * 2)
	assert.Len(t, hash, 64)
	assert.Regexp(t, "^[a-f0-9]{64}$", hash, "должен быть lowercase hex")
}

func TestHashPassphrase_KnownVector(t *testing.T) {
	tests := []struct {
		passphrase string
		want       string
	}{
		{passphrase: "test", want: "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
		{passphrase: "", want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HashPassphrase(tt.passphrase))
	}
}

func TestHashPassphrase_Deterministic(t *testing.T) {
	assert.Equal(t, HashPassphrase("secret1"), HashPassphrase("secret1"))
	assert.NotEqual(t, HashPassphrase("secret1"), HashPassphrase("secret2"))
}

func TestVerifyPassphrase(t *testing.T) {
	validHash := HashPassphrase("my_master_pass")

	tests := []struct {
		name       string
		passphrase string
		hash       string
		errMsg     string
		wantErr    bool
	}{
		{
			name:       "successful verification",
			passphrase: "my_master_pass",
			hash:       validHash,
		},
		{
			name:       "uppercase stored hash",
			passphrase: "my_master_pass",
			hash:       strings.ToUpper(validHash),
		},
		{
			name:       "wrong passphrase",
			passphrase: "wrong_pass",
			hash:       validHash,
			wantErr:    true,
			errMsg:     "does not match",
		},
		{
			name:       "truncated hash",
			passphrase: "my_master_pass",
			hash:       validHash[:32],
			wantErr:    true,
			errMsg:     "does not match",
		},
		{
			name:       "empty hash",
			passphrase: "my_master_pass",
			hash:       "",
			wantErr:    true,
			errMsg:     "hashed passphrase cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassphrase(tt.passphrase, tt.hash)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyPassphrase_Mismatch(t *testing.T) {
	err := VerifyPassphrase("other", HashPassphrase("secret"))
	assert.ErrorIs(t, err, ErrHashMismatch)
}
