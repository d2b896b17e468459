package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) []byte {
	t.Helper()
	key, err := GenerateKey()
	require.NoError(t, err)
	return key
}

func TestEncryptToken(t *testing.T) {
	validKey := newTestKey(t)

	tests := []struct {
		name      string
		errMsg    string
		plaintext []byte
		key       []byte
		wantErr   bool
	}{
		{
			name:      "successful encryption",
			plaintext: []byte("Hello, World!"),
			key:       validKey,
		},
		{
			name:      "empty plaintext",
			plaintext: []byte{},
			key:       validKey,
		},
		{
			name:      "exact block size",
			plaintext: []byte("0123456789abcdef"),
			key:       validKey,
		},
		{
			name:      "invalid key length - too short",
			plaintext: []byte("test"),
			key:       make([]byte, 16),
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
		{
			name:      "invalid key length - too long",
			plaintext: []byte("test"),
			key:       make([]byte, 64),
			wantErr:   true,
			errMsg:    "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := EncryptToken(tt.plaintext, tt.key)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Regexp(t, "^[A-Za-z0-9+/]+=*$", token, "результат должен быть валидным Base64")

			raw, err := base64.StdEncoding.DecodeString(token)
			require.NoError(t, err)

			// IV + хотя бы один блок padding + tag
			blocks := len(tt.plaintext)/16 + 1
			assert.Len(t, raw, IVSize+blocks*16+TagSize)
		})
	}
}

func TestEncryptDecryptToken_RoundTrip(t *testing.T) {
	key := newTestKey(t)

	random := make([]byte, 1024)
	_, _ = rand.Read(random)

	testCases := map[string][]byte{
		"ascii":   []byte("Hello, World!"),
		"unicode": []byte("Привет, мир! 🌍"),
		"empty":   {},
		"json":    []byte(`{"username": "alice", "password": "secret123"}`),
		"block":   []byte("0123456789abcdef"),
		"random":  random,
	}

	for name, plaintext := range testCases {
		t.Run(name, func(t *testing.T) {
			token, err := EncryptToken(plaintext, key)
			require.NoError(t, err)

			decrypted, err := DecryptToken(token, key)
			require.NoError(t, err)
			assert.Equal(t, string(plaintext), string(decrypted))
		})
	}
}

func TestEncryptToken_FreshIV(t *testing.T) {
	// Одинаковые данные шифруются по-разному из-за случайного IV
	key := newTestKey(t)
	plaintext := []byte("same data")

	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := EncryptToken(plaintext, key)
		require.NoError(t, err)
		assert.False(t, tokens[token], "token reuse detected at iteration %d", i)
		tokens[token] = true
	}
}

func TestDecryptToken_Errors(t *testing.T) {
	key := newTestKey(t)
	validToken, err := EncryptToken([]byte("test message"), key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(validToken)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    []byte
		errMsg string
	}{
		{
			name:   "invalid base64",
			token:  "invalid-base64!!!",
			key:    key,
			errMsg: "failed to decode base64",
		},
		{
			name:   "empty token",
			token:  "",
			key:    key,
			errMsg: "token too short",
		},
		{
			name:   "only IV",
			token:  base64.StdEncoding.EncodeToString(raw[:IVSize]),
			key:    key,
			errMsg: "token too short",
		},
		{
			name:   "truncated by one byte",
			token:  base64.StdEncoding.EncodeToString(raw[:len(raw)-1]),
			key:    key,
			errMsg: "token too short",
		},
		{
			name:   "extra trailing byte",
			token:  base64.StdEncoding.EncodeToString(append(append([]byte{}, raw...), 0x00)),
			key:    key,
			errMsg: "block size",
		},
		{
			name:   "wrong key",
			token:  validToken,
			key:    make([]byte, 32),
			errMsg: "authentication failed",
		},
		{
			name:   "invalid key length",
			token:  validToken,
			key:    make([]byte, 16),
			errMsg: "encryption key must be 32 bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decrypted, err := DecryptToken(tt.token, tt.key)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecryption)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, decrypted)
		})
	}
}

func TestDecryptToken_FlipAnyByte(t *testing.T) {
	// Изменение любого байта токена должно давать ErrDecryption, а не мусор
	key := newTestKey(t)
	token, err := EncryptToken([]byte("super secret password"), key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)

	for i := range raw {
		corrupted := append([]byte{}, raw...)
		corrupted[i] ^= 0x01

		decrypted, err := DecryptToken(base64.StdEncoding.EncodeToString(corrupted), key)
		require.Error(t, err, "flipped byte %d was not detected", i)
		assert.ErrorIs(t, err, ErrDecryption)
		assert.Nil(t, decrypted)
	}
}

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 32; n++ {
		data := make([]byte, n)
		padded := pkcs7Pad(data, 16)
		assert.Zero(t, len(padded)%16)
		assert.Greater(t, len(padded), n)

		unpadded, err := pkcs7Unpad(padded, 16)
		require.NoError(t, err)
		assert.Equal(t, data, unpadded)
	}

	_, err := pkcs7Unpad([]byte{}, 16)
	assert.Error(t, err)

	bad := make([]byte, 16)
	bad[15] = 17
	_, err = pkcs7Unpad(bad, 16)
	assert.Error(t, err)

	bad[15] = 0
	_, err = pkcs7Unpad(bad, 16)
	assert.Error(t, err)
}
