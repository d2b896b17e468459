// Package cli команды passkeeper поверх cobra
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/passkeeper/internal/autofill"
	"github.com/iudanet/passkeeper/internal/config"
	"github.com/iudanet/passkeeper/internal/gate"
	"github.com/iudanet/passkeeper/internal/iocli"
	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/vault"
)

// Gate мастер-пароль и настройки (gate.Gate)
type Gate interface {
	Setup(ctx context.Context, passphrase, confirmation string, biometric bool) error
	Unlock(ctx context.Context, passphrase string) error
	State(ctx context.Context) (gate.State, error)
	Record(ctx context.Context) (*models.MasterSecretRecord, error)
	SetBiometricEnabled(ctx context.Context, enabled bool) error
	SetAutoLockTimeout(ctx context.Context, minutes int) error
	ChangePassphrase(ctx context.Context, oldPassphrase, newPassphrase, confirmation string) error
	Reset(ctx context.Context) error
}

// Vault операции над профилями и секретами (vault.Service)
type Vault interface {
	AddProfile(ctx context.Context, p *models.CredentialProfile) error
	UpdateProfile(ctx context.Context, p *models.CredentialProfile) error
	GetProfile(ctx context.Context, id string) (*models.CredentialProfile, bool, error)
	ListProfiles(ctx context.Context) ([]*models.CredentialProfile, error)
	SearchProfiles(ctx context.Context, query string) ([]*models.CredentialProfile, error)
	ListProfilesByCategory(ctx context.Context, category string) ([]*models.CredentialProfile, error)
	ListCategories(ctx context.Context) ([]string, error)
	DeleteProfile(ctx context.Context, id string) (bool, error)
	DeriveForProfile(ctx context.Context, id, passphrase string) (string, error)

	AddSecret(ctx context.Context, in vault.SecretInput) (*models.StoredSecret, error)
	UpdateSecret(ctx context.Context, id string, in vault.SecretInput) (*models.StoredSecret, error)
	GetSecret(ctx context.Context, id string) (*models.StoredSecret, bool, error)
	ListSecrets(ctx context.Context) ([]*models.StoredSecret, error)
	SearchSecrets(ctx context.Context, query string) ([]*models.StoredSecret, error)
	ListSecretsByCategory(ctx context.Context, category string) ([]*models.StoredSecret, error)
	RevealPassword(ctx context.Context, id string) (string, bool, error)
	DeleteSecret(ctx context.Context, id string) (bool, error)

	Wipe(ctx context.Context) error
}

// KeyDeleter удаление ключей из хранилища ключей (keystore.Keystore)
type KeyDeleter interface {
	DeleteKey(ctx context.Context, alias string) error
}

// App зависимости команд, открываются лениво при первом обращении
type App struct {
	Gate     Gate
	Vault    Vault
	Keys     KeyDeleter
	Matcher  *autofill.Matcher
	Resolver *autofill.Resolver
	// KeyAliases ключи, которые удаляются при reset --wipe
	KeyAliases []string
}

// Opener открывает хранилища по конфигурации. close освобождает ресурсы.
type Opener func(ctx context.Context, cfg *config.Config) (app *App, closeFn func() error, err error)

// Passwords источники мастер-пароля из флагов
type Passwords struct {
	FromFile string
	FromArgs string
}

// Version информация о сборке
type Version struct {
	Version   string
	BuildDate string
	GitCommit string
}

type Cli struct {
	io        iocli.IO
	cfg       *config.Config
	open      Opener
	app       *App
	closeApp  func() error
	version   Version
	passwords Passwords
}

func New(io iocli.IO, cfg *config.Config, open Opener, version Version) *Cli {
	return &Cli{
		io:      io,
		cfg:     cfg,
		open:    open,
		version: version,
	}
}

// Close закрывает открытые хранилища
func (c *Cli) Close() error {
	if c.closeApp == nil {
		return nil
	}
	err := c.closeApp()
	c.closeApp = nil
	c.app = nil
	return err
}

// ensureApp открывает хранилища при первом вызове
func (c *Cli) ensureApp(ctx context.Context) (*App, error) {
	if c.app != nil {
		return c.app, nil
	}

	slog.Debug("opening storage", "db", c.cfg.DBPath, "vault_db", c.cfg.VaultDBPath)
	app, closeFn, err := c.open(ctx, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	c.app = app
	c.closeApp = closeFn
	return app, nil
}

// unlock запрашивает мастер-пароль и разблокирует хранилище на время команды
func (c *Cli) unlock(ctx context.Context) (*App, error) {
	app, err := c.ensureApp(ctx)
	if err != nil {
		return nil, err
	}

	password, err := c.getMasterPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to get master password: %w", err)
	}

	if err := app.Gate.Unlock(ctx, password); err != nil {
		if errors.Is(err, gate.ErrNotInitialized) {
			return nil, fmt.Errorf("%w. Please run 'passkeeper setup' first", err)
		}
		return nil, err
	}
	return app, nil
}

// getMasterPassword получает мастер-пароль из источников с приоритетом:
// 1. Переменная окружения PASSKEEPER_MASTER_PASSWORD
// 2. Файл из --master-password-file
// 3. Флаг --master-password
// 4. Интерактивный ввод
func (c *Cli) getMasterPassword() (string, error) {
	if envPassword := config.MasterPassword(); envPassword != "" {
		return envPassword, nil
	}

	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword("Master password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// hasNonInteractivePassword true, если мастер-пароль задан не через prompt
func (c *Cli) hasNonInteractivePassword() bool {
	return config.MasterPassword() != "" || c.passwords.FromFile != "" || c.passwords.FromArgs != ""
}

// readNewPassword запрашивает новый пароль с подтверждением.
// Неинтерактивный источник считается подтвержденным.
func (c *Cli) readNewPassword(prompt string) (string, string, error) {
	if c.hasNonInteractivePassword() {
		password, err := c.getMasterPassword()
		return password, password, err
	}
	return c.promptNewPassword(prompt)
}

func (c *Cli) promptNewPassword(prompt string) (string, string, error) {
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	confirmation, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password confirmation: %w", err)
	}
	return password, confirmation, nil
}

// readPassphrase берет passphrase из флага или спрашивает интерактивно
func (c *Cli) readPassphrase(fromFlag string) (string, error) {
	if fromFlag != "" {
		return fromFlag, nil
	}
	passphrase, err := c.io.ReadPassword("Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return passphrase, nil
}
