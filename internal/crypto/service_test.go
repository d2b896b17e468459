package crypto

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticHandle отдает фиксированный ключ
type staticHandle struct {
	key []byte
}

func (h *staticHandle) WithKey(fn func(key []byte) error) error {
	return fn(h.key)
}

func newStaticProvider(key []byte) *KeyProviderMock {
	return &KeyProviderMock{
		GetOrCreateKeyFunc: func(ctx context.Context, alias string) (KeyHandle, error) {
			return &staticHandle{key: key}, nil
		},
	}
}

func TestService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	keys := newStaticProvider(newTestKey(t))
	svc := NewService(keys, "")

	for _, plaintext := range []string{"", "hunter2", "Пароль с юникодом 🔑", "!@#$%^&*()_+-=[]{}|;:,.<>?"} {
		token, err := svc.Encrypt(ctx, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, token)

		decrypted, err := svc.Decrypt(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}

	// Используется alias по умолчанию
	for _, call := range keys.GetOrCreateKeyCalls() {
		assert.Equal(t, DefaultKeyAlias, call.Alias)
	}
}

func TestService_FreshTokens(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newStaticProvider(newTestKey(t)), "test")

	token1, err := svc.Encrypt(ctx, "same")
	require.NoError(t, err)
	token2, err := svc.Encrypt(ctx, "same")
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
}

func TestService_KeyReplaced(t *testing.T) {
	// Токены, зашифрованные старым ключом, после замены ключа не расшифровываются
	ctx := context.Background()
	handle := &staticHandle{key: newTestKey(t)}
	keys := &KeyProviderMock{
		GetOrCreateKeyFunc: func(ctx context.Context, alias string) (KeyHandle, error) {
			return handle, nil
		},
	}
	svc := NewService(keys, "test")

	token, err := svc.Encrypt(ctx, "secret")
	require.NoError(t, err)

	handle.key = newTestKey(t)

	decrypted, err := svc.Decrypt(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.Empty(t, decrypted)
}

func TestService_KeyProviderError(t *testing.T) {
	ctx := context.Background()
	keys := &KeyProviderMock{
		GetOrCreateKeyFunc: func(ctx context.Context, alias string) (KeyHandle, error) {
			return nil, errors.New("keystore unavailable")
		},
	}
	svc := NewService(keys, "test")

	_, err := svc.Encrypt(ctx, "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get encryption key")

	_, err = svc.Decrypt(ctx, "token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryption)
	assert.Contains(t, err.Error(), "keystore unavailable")
}

func TestService_MalformedToken(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newStaticProvider(newTestKey(t)), "test")

	for _, token := range []string{"", "not base64!", "AAAA"} {
		decrypted, err := svc.Decrypt(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecryption)
		assert.Empty(t, decrypted)
	}
}
