package models

import "time"

const (
	// DefaultPasswordLength длина пароля профиля по умолчанию
	DefaultPasswordLength = 16
	// MinPasswordLength минимальная длина выводимого пароля
	MinPasswordLength = 1
	// MaxPasswordLength максимальная длина выводимого пароля
	MaxPasswordLength = 128
	// DefaultSpecialChars набор спецсимволов профиля по умолчанию
	DefaultSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	// DefaultCategory категория записи по умолчанию
	DefaultCategory = "General"
)

// CredentialProfile описывает, как вывести пароль для сайта или приложения.
// Сам пароль не хранится: он каждый раз выводится из passphrase пользователя.
type CredentialProfile struct {
	CreatedAt       time.Time `json:"created_at"`                               // CreatedAt время создания профиля
	UpdatedAt       time.Time `json:"updated_at"`                               // UpdatedAt время последнего изменения
	ID              string    `json:"id"`                                       // ID уникальный идентификатор профиля (UUID)
	Title           string    `json:"title" validate:"required"`                // Title название (например, "GitHub")
	Website         string    `json:"website"`                                  // Website домен сайта или идентификатор приложения
	Username        string    `json:"username"`                                 // Username логин или email
	Notes           string    `json:"notes"`                                    // Notes заметки пользователя
	Category        string    `json:"category"`                                 // Category категория профиля
	SpecialChars    string    `json:"special_chars"`                            // SpecialChars набор спецсимволов (на вывод не влияет)
	PasswordLength  int       `json:"password_length" validate:"min=1,max=128"` // PasswordLength длина выводимого пароля
	UseSpecialChars bool      `json:"use_special_chars"`                        // UseSpecialChars использовать спецсимволы (на вывод не влияет)
}

// NewCredentialProfile возвращает профиль с настройками по умолчанию.
func NewCredentialProfile(title, website, username string) *CredentialProfile {
	return &CredentialProfile{
		Title:           title,
		Website:         website,
		Username:        username,
		Category:        DefaultCategory,
		PasswordLength:  DefaultPasswordLength,
		UseSpecialChars: true,
		SpecialChars:    DefaultSpecialChars,
	}
}
