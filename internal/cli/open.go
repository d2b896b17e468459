package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/passkeeper/internal/autofill"
	"github.com/iudanet/passkeeper/internal/config"
	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/gate"
	"github.com/iudanet/passkeeper/internal/keystore"
	"github.com/iudanet/passkeeper/internal/storage/boltdb"
	"github.com/iudanet/passkeeper/internal/storage/sqlite"
	"github.com/iudanet/passkeeper/internal/vault"
)

var (
	_ Gate       = (*gate.Gate)(nil)
	_ Vault      = (*vault.Service)(nil)
	_ KeyDeleter = (*keystore.Keystore)(nil)
)

// Open открывает хранилища по конфигурации и собирает сервисы команд
func Open(ctx context.Context, cfg *config.Config) (*App, func() error, error) {
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqliteStorage, err := sqlite.New(ctx, cfg.VaultDBPath)
	if err != nil {
		_ = boltStorage.Close()
		return nil, nil, fmt.Errorf("failed to open vault database: %w", err)
	}

	closeAll := func() error {
		return errors.Join(sqliteStorage.Close(), boltStorage.Close())
	}

	deviceSecret, err := keystore.LoadOrCreateDeviceSecret(cfg.DeviceSecretFile)
	if err != nil {
		_ = closeAll()
		return nil, nil, err
	}

	keys, err := keystore.New(boltStorage, deviceSecret)
	if err != nil {
		_ = closeAll()
		return nil, nil, err
	}

	g := gate.New(boltStorage)
	signer := autofill.NewHandleSigner(keys, cfg.HandleTTL)

	app := &App{
		Gate:     g,
		Vault:    vault.NewService(boltStorage, sqliteStorage, crypto.NewService(keys, crypto.DefaultKeyAlias), g),
		Keys:     keys,
		Matcher:  autofill.NewMatcher(autofill.NewClassifier(cfg.UsernameKeywords, cfg.PasswordKeywords), boltStorage, signer),
		Resolver: autofill.NewResolver(signer, g, boltStorage),
		KeyAliases: []string{
			crypto.DefaultKeyAlias,
			autofill.HandleKeyAlias,
		},
	}

	closeFn := func() error {
		keys.Forget()
		return closeAll()
	}
	return app, closeFn, nil
}
