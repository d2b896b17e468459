package models

import "time"

// DefaultAutoLockTimeoutMinutes таймаут автоблокировки по умолчанию
const DefaultAutoLockTimeoutMinutes = 5

// MasterSecretRecord хранит состояние мастер-пароля.
// Создается при первой настройке, удаляется только полным сбросом.
type MasterSecretRecord struct {
	PasswordHash           string `json:"password_hash"`             // PasswordHash SHA-256 мастер-пароля (lowercase hex)
	LastUnlockEpochMillis  int64  `json:"last_unlock_epoch_millis"`  // LastUnlockEpochMillis время последней разблокировки
	AutoLockTimeoutMinutes int    `json:"auto_lock_timeout_minutes"` // AutoLockTimeoutMinutes таймаут автоблокировки (<=0 отключает)
	BiometricEnabled       bool   `json:"biometric_enabled"`         // BiometricEnabled разрешена ли биометрическая разблокировка
}

// LastUnlock возвращает время последней разблокировки.
func (r *MasterSecretRecord) LastUnlock() time.Time {
	if r.LastUnlockEpochMillis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(r.LastUnlockEpochMillis)
}

// AutoLockTimeout возвращает таймаут автоблокировки как time.Duration.
func (r *MasterSecretRecord) AutoLockTimeout() time.Duration {
	return time.Duration(r.AutoLockTimeoutMinutes) * time.Minute
}
