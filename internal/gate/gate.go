// Package gate охраняет доступ к хранилищу мастер-паролем.
//
// Состояния: Uninitialized -> Locked -> Unlocked. Разблокировка живет только в
// памяти процесса, поэтому после перезапуска хранилище снова Locked. Автоблокировку
// gate не выполняет сам: вызывающий код проверяет Expired или использует RequireUnlocked.
package gate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
	"github.com/iudanet/passkeeper/internal/validation"
)

// State состояние gate
type State int

const (
	StateUninitialized State = iota
	StateLocked
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Gate хранит состояние разблокировки и запись мастер-пароля
type Gate struct {
	store    storage.SettingsStorage
	now      func() time.Time
	mu       sync.RWMutex
	unlocked bool
}

// Option настраивает Gate
type Option func(*Gate)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(g *Gate) {
		g.now = now
	}
}

// New создает gate поверх хранилища настроек
func New(store storage.SettingsStorage, opts ...Option) *Gate {
	g := &Gate{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Setup задает мастер-пароль: Uninitialized -> Unlocked
func (g *Gate) Setup(ctx context.Context, passphrase, confirmation string, biometric bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.loadRecord(ctx); err == nil {
		return ErrAlreadyInitialized
	} else if !errors.Is(err, ErrNotInitialized) {
		return err
	}

	if err := validation.ValidateMasterPassword(passphrase, confirmation); err != nil {
		return err
	}

	record := &models.MasterSecretRecord{
		PasswordHash:           crypto.HashPassphrase(passphrase),
		LastUnlockEpochMillis:  g.now().UnixMilli(),
		AutoLockTimeoutMinutes: models.DefaultAutoLockTimeoutMinutes,
		BiometricEnabled:       biometric,
	}
	if err := g.store.SaveMasterRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save master record: %w", err)
	}

	g.unlocked = true
	slog.Info("master password set up", "biometric", biometric)
	return nil
}

// Unlock проверяет мастер-пароль: Locked -> Unlocked.
// При неверном пароле состояние становится Locked и возвращается ErrAuthenticationFailed.
func (g *Gate) Unlock(ctx context.Context, passphrase string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	record, err := g.loadRecord(ctx)
	if err != nil {
		return err
	}

	if err := crypto.VerifyPassphrase(passphrase, record.PasswordHash); err != nil {
		g.unlocked = false
		if errors.Is(err, crypto.ErrHashMismatch) {
			slog.Warn("unlock failed: wrong master password")
			return ErrAuthenticationFailed
		}
		return fmt.Errorf("failed to verify master password: %w", err)
	}

	return g.markUnlocked(ctx, record)
}

// UnlockWithBiometric разблокирует по успешному ответу биометрии, без проверки digest
func (g *Gate) UnlockWithBiometric(ctx context.Context, prompt BiometricPrompt) error {
	record, err := g.Record(ctx)
	if err != nil {
		return err
	}
	if !record.BiometricEnabled {
		return ErrBiometricDisabled
	}

	// Ждем ответ без удержания блокировки
	if err := awaitBiometric(ctx, prompt); err != nil {
		slog.Debug("biometric unlock rejected", "error", err)
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Запись могла измениться (сброс, отключение биометрии), пока ждали ответ
	record, err = g.loadRecord(ctx)
	if err != nil {
		return err
	}
	if !record.BiometricEnabled {
		return ErrBiometricDisabled
	}

	return g.markUnlocked(ctx, record)
}

// Lock переводит gate в Locked
func (g *Gate) Lock() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.unlocked = false
}

// State возвращает текущее состояние
func (g *Gate) State(ctx context.Context) (State, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, err := g.loadRecord(ctx); err != nil {
		if errors.Is(err, ErrNotInitialized) {
			return StateUninitialized, nil
		}
		return StateLocked, err
	}

	if g.unlocked {
		return StateUnlocked, nil
	}
	return StateLocked, nil
}

// LastUnlock возвращает время последней разблокировки (zero, если ее не было)
func (g *Gate) LastUnlock(ctx context.Context) (time.Time, error) {
	record, err := g.Record(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return record.LastUnlock(), nil
}

// Record возвращает копию записи мастер-пароля
func (g *Gate) Record(ctx context.Context) (*models.MasterSecretRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.loadRecord(ctx)
}

// Expired сообщает, истек ли таймаут автоблокировки к моменту now.
// Таймаут <= 0 отключает автоблокировку.
func (g *Gate) Expired(ctx context.Context, now time.Time) (bool, error) {
	record, err := g.Record(ctx)
	if err != nil {
		return false, err
	}
	return expired(record, now), nil
}

// RequireUnlocked возвращает ErrLocked, если gate заблокирован или истек таймаут.
// Истекший таймаут переводит gate в Locked.
func (g *Gate) RequireUnlocked(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.unlocked {
		return ErrLocked
	}

	record, err := g.loadRecord(ctx)
	if err != nil {
		g.unlocked = false
		return err
	}

	if expired(record, g.now()) {
		g.unlocked = false
		slog.Info("vault auto-locked", "timeout", record.AutoLockTimeout())
		return ErrLocked
	}

	return nil
}

// SetBiometricEnabled включает или выключает биометрическую разблокировку
func (g *Gate) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	return g.updateRecord(ctx, func(r *models.MasterSecretRecord) {
		r.BiometricEnabled = enabled
	})
}

// SetAutoLockTimeout задает таймаут автоблокировки в минутах (<= 0 отключает)
func (g *Gate) SetAutoLockTimeout(ctx context.Context, minutes int) error {
	return g.updateRecord(ctx, func(r *models.MasterSecretRecord) {
		r.AutoLockTimeoutMinutes = minutes
	})
}

// ChangePassphrase меняет мастер-пароль после проверки старого
func (g *Gate) ChangePassphrase(ctx context.Context, oldPassphrase, newPassphrase, confirmation string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	record, err := g.loadRecord(ctx)
	if err != nil {
		return err
	}

	if err := crypto.VerifyPassphrase(oldPassphrase, record.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrHashMismatch) {
			return ErrAuthenticationFailed
		}
		return fmt.Errorf("failed to verify master password: %w", err)
	}

	if err := validation.ValidateMasterPassword(newPassphrase, confirmation); err != nil {
		return err
	}

	record.PasswordHash = crypto.HashPassphrase(newPassphrase)
	record.LastUnlockEpochMillis = g.now().UnixMilli()
	if err := g.store.SaveMasterRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save master record: %w", err)
	}

	g.unlocked = true
	slog.Info("master password changed")
	return nil
}

// Reset удаляет запись мастер-пароля: gate возвращается в Uninitialized.
// Пароль не проверяется: вызывающий обязан либо разблокировать gate,
// либо уничтожить данные и ключи вместе с записью.
func (g *Gate) Reset(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.DeleteMasterRecord(ctx); err != nil {
		return fmt.Errorf("failed to delete master record: %w", err)
	}

	g.unlocked = false
	slog.Warn("master password reset")
	return nil
}

// updateRecord меняет настройки, требует разблокированного gate
func (g *Gate) updateRecord(ctx context.Context, mutate func(*models.MasterSecretRecord)) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	record, err := g.loadRecord(ctx)
	if err != nil {
		return err
	}
	if !g.unlocked {
		return ErrLocked
	}

	mutate(record)
	if err := g.store.SaveMasterRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save master record: %w", err)
	}
	return nil
}

// markUnlocked фиксирует время разблокировки, вызывается под g.mu
func (g *Gate) markUnlocked(ctx context.Context, record *models.MasterSecretRecord) error {
	record.LastUnlockEpochMillis = g.now().UnixMilli()
	if err := g.store.SaveMasterRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to save unlock time: %w", err)
	}

	g.unlocked = true
	slog.Debug("vault unlocked")
	return nil
}

// loadRecord читает запись, ErrSettingsNotFound превращается в ErrNotInitialized
func (g *Gate) loadRecord(ctx context.Context) (*models.MasterSecretRecord, error) {
	record, err := g.store.GetMasterRecord(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to load master record: %w", err)
	}
	return record, nil
}

func expired(record *models.MasterSecretRecord, now time.Time) bool {
	timeout := record.AutoLockTimeout()
	if timeout <= 0 {
		return false
	}
	last := record.LastUnlock()
	if last.IsZero() {
		return true
	}
	return now.Sub(last) >= timeout
}
