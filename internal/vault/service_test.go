package vault

import (
	"bytes"
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/gate"
	"github.com/iudanet/passkeeper/internal/storage/boltdb"
	"github.com/iudanet/passkeeper/internal/storage/sqlite"
)

// fakeGate управляемая блокировка
type fakeGate struct {
	locked atomic.Bool
}

func (g *fakeGate) RequireUnlocked(ctx context.Context) error {
	if g.locked.Load() {
		return gate.ErrLocked
	}
	return nil
}

// staticHandle KeyHandle с фиксированным ключом
type staticHandle struct {
	key []byte
}

func (h staticHandle) WithKey(fn func(key []byte) error) error {
	return fn(h.key)
}

// swappableKeys провайдер, ключ которого можно заменить (имитация потери ключа)
type swappableKeys struct {
	key atomic.Pointer[[]byte]
}

func newSwappableKeys(b byte) *swappableKeys {
	k := &swappableKeys{}
	k.set(b)
	return k
}

func (k *swappableKeys) set(b byte) {
	key := bytes.Repeat([]byte{b}, crypto.KeySize)
	k.key.Store(&key)
}

func (k *swappableKeys) GetOrCreateKey(ctx context.Context, alias string) (crypto.KeyHandle, error) {
	return staticHandle{key: *k.key.Load()}, nil
}

type testEnv struct {
	svc  *Service
	gate *fakeGate
	keys *swappableKeys
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	profiles, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "profiles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = profiles.Close() })

	secrets, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = secrets.Close() })

	keys := newSwappableKeys(1)
	g := &fakeGate{}

	return &testEnv{
		svc:  NewService(profiles, secrets, crypto.NewService(keys, ""), g),
		gate: g,
		keys: keys,
	}
}
