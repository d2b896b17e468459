package autofill

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/passkeeper/internal/crypto"
)

// staticHandle KeyHandle с фиксированным ключом
type staticHandle struct {
	key []byte
}

func (h staticHandle) WithKey(fn func(key []byte) error) error {
	return fn(h.key)
}

func newTestKeys(b byte) *crypto.KeyProviderMock {
	key := bytes.Repeat([]byte{b}, crypto.KeySize)
	return &crypto.KeyProviderMock{
		GetOrCreateKeyFunc: func(ctx context.Context, alias string) (crypto.KeyHandle, error) {
			return staticHandle{key: key}, nil
		},
	}
}

var testFields = []FieldDescriptor{
	{FieldID: "user", Kind: FieldUsername},
	{FieldID: "pass", Kind: FieldPassword},
}

func TestHandle_SignVerify(t *testing.T) {
	ctx := context.Background()
	keys := newTestKeys(1)
	signer := NewHandleSigner(keys, time.Minute)

	handle, err := signer.Sign(ctx, "profile-1", "com.example.app", testFields)
	require.NoError(t, err)

	claims, err := signer.Verify(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", claims.ProfileID)
	assert.Equal(t, "com.example.app", claims.AppID)
	assert.Equal(t, testFields, claims.Fields)
	assert.NotEmpty(t, claims.ID)

	for _, call := range keys.GetOrCreateKeyCalls() {
		assert.Equal(t, HandleKeyAlias, call.Alias)
	}
}

func TestHandle_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	signer := NewHandleSigner(newTestKeys(1), time.Minute)

	h1, err := signer.Sign(ctx, "p", "app", testFields)
	require.NoError(t, err)
	h2, err := signer.Sign(ctx, "p", "app", testFields)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHandle_Expired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	signer := NewHandleSigner(newTestKeys(1), time.Minute)
	signer.now = func() time.Time { return now }

	handle, err := signer.Sign(ctx, "p", "app", testFields)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = signer.Verify(ctx, handle)
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestHandle_Invalid(t *testing.T) {
	ctx := context.Background()
	signer := NewHandleSigner(newTestKeys(1), time.Minute)

	valid, err := signer.Sign(ctx, "p", "app", testFields)
	require.NoError(t, err)

	foreign, err := NewHandleSigner(newTestKeys(2), time.Minute).Sign(ctx, "p", "app", testFields)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, HandleClaims{
		ProfileID: "p",
		Fields:    testFields,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    handleIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noFields, err := signer.Sign(ctx, "p", "app", nil)
	require.NoError(t, err)

	// Подменяем payload, оставляя исходную подпись
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	payload = bytes.Replace(payload, []byte(`"pid":"p"`), []byte(`"pid":"q"`), 1)
	tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString(payload) + "." + parts[2]

	tests := []struct {
		name   string
		handle string
	}{
		{name: "garbage", handle: "not-a-jwt"},
		{name: "empty", handle: ""},
		{name: "tampered payload", handle: tampered},
		{name: "signed with another key", handle: foreign},
		{name: "alg none", handle: unsigned},
		{name: "no fields", handle: noFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Verify(ctx, tt.handle)
			assert.ErrorIs(t, err, ErrInvalidHandle)
		})
	}
}

func TestHandle_KeyProviderError(t *testing.T) {
	keyErr := errors.New("keystore unavailable")
	keys := &crypto.KeyProviderMock{
		GetOrCreateKeyFunc: func(ctx context.Context, alias string) (crypto.KeyHandle, error) {
			return nil, keyErr
		},
	}
	signer := NewHandleSigner(keys, 0)
	assert.Equal(t, DefaultHandleTTL, signer.ttl)

	_, err := signer.Sign(context.Background(), "p", "app", testFields)
	assert.ErrorIs(t, err, keyErr)

	_, err = signer.Verify(context.Background(), "x.y.z")
	assert.ErrorIs(t, err, keyErr)
}
