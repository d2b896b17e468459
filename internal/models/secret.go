package models

import "time"

// StoredSecret представляет сохраненную учетную запись с зашифрованным паролем.
// EncryptedPassword всегда содержит токен сервиса шифрования, никогда не plaintext.
type StoredSecret struct {
	CreatedAt         time.Time `json:"created_at"`                // CreatedAt время создания
	UpdatedAt         time.Time `json:"updated_at"`                // UpdatedAt время последнего изменения
	ID                string    `json:"id"`                        // ID уникальный идентификатор (UUID)
	Title             string    `json:"title" validate:"required"` // Title название записи
	Website           string    `json:"website"`                   // Website адрес сайта
	Username          string    `json:"username"`                  // Username логин или email
	EncryptedPassword string    `json:"encrypted_password"`        // EncryptedPassword base64(IV || ciphertext || tag)
	Notes             string    `json:"notes"`                     // Notes заметки
	Category          string    `json:"category"`                  // Category категория
}
