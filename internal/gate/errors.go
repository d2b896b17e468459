package gate

import "errors"

var (
	// ErrAuthenticationFailed неверный мастер-пароль, можно повторить попытку
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrNotInitialized мастер-пароль еще не задан
	ErrNotInitialized = errors.New("master password is not set up")

	// ErrAlreadyInitialized повторная настройка без сброса
	ErrAlreadyInitialized = errors.New("master password is already set up")

	// ErrLocked операция требует разблокированного хранилища
	ErrLocked = errors.New("vault is locked")

	// ErrBiometricDisabled биометрическая разблокировка не включена
	ErrBiometricDisabled = errors.New("biometric unlock is disabled")

	// ErrBiometricFailed биометрия вернула ошибку
	ErrBiometricFailed = errors.New("biometric authentication failed")

	// ErrBiometricCancelled пользователь отменил биометрический запрос
	ErrBiometricCancelled = errors.New("biometric authentication cancelled")
)
