package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
)

var _ storage.SecretStorage = (*Storage)(nil)

const secretColumns = `id, title, website, username, encrypted_password, notes, category, created_at, updated_at`

// CreateSecret inserts a new secret record
func (s *Storage) CreateSecret(ctx context.Context, secret *models.StoredSecret) error {
	if secret.ID == "" {
		return fmt.Errorf("secret ID cannot be empty")
	}

	query := `INSERT INTO secrets (` + secretColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		secret.ID,
		secret.Title,
		secret.Website,
		secret.Username,
		secret.EncryptedPassword,
		secret.Notes,
		secret.Category,
		timeToMillis(secret.CreatedAt),
		timeToMillis(secret.UpdatedAt),
	)

	if err != nil {
		// Проверяем на duplicate id
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrSecretAlreadyExists
		}
		return fmt.Errorf("failed to insert secret: %w", err)
	}

	return nil
}

// UpdateSecret replaces all mutable fields of an existing secret
func (s *Storage) UpdateSecret(ctx context.Context, secret *models.StoredSecret) error {
	query := `
		UPDATE secrets
		SET title = ?, website = ?, username = ?, encrypted_password = ?,
		    notes = ?, category = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		secret.Title,
		secret.Website,
		secret.Username,
		secret.EncryptedPassword,
		secret.Notes,
		secret.Category,
		timeToMillis(secret.UpdatedAt),
		secret.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update secret: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrSecretNotFound
	}

	return nil
}

// GetSecret retrieves a secret by ID
func (s *Storage) GetSecret(ctx context.Context, id string) (*models.StoredSecret, error) {
	query := `SELECT ` + secretColumns + ` FROM secrets WHERE id = ?`

	secret, err := scanSecret(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSecretNotFound
		}
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}

	return secret, nil
}

// ListSecrets returns all secrets, most recently updated first
func (s *Storage) ListSecrets(ctx context.Context) ([]*models.StoredSecret, error) {
	query := `SELECT ` + secretColumns + ` FROM secrets ORDER BY updated_at DESC, id`
	return s.querySecrets(ctx, query)
}

// SearchSecrets returns secrets whose title, website or username contains query
func (s *Storage) SearchSecrets(ctx context.Context, query string) ([]*models.StoredSecret, error) {
	// LIKE в SQLite регистронезависим только для ASCII, поэтому lower() с обеих сторон
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	q := `
		SELECT ` + secretColumns + `
		FROM secrets
		WHERE lower(title) LIKE ? ESCAPE '\'
		   OR lower(website) LIKE ? ESCAPE '\'
		   OR lower(username) LIKE ? ESCAPE '\'
		ORDER BY updated_at DESC, id
	`
	return s.querySecrets(ctx, q, pattern, pattern, pattern)
}

// ListSecretsByCategory returns secrets of the given category
func (s *Storage) ListSecretsByCategory(ctx context.Context, category string) ([]*models.StoredSecret, error) {
	query := `SELECT ` + secretColumns + ` FROM secrets WHERE category = ? ORDER BY updated_at DESC, id`
	return s.querySecrets(ctx, query, category)
}

// DeleteSecret removes a secret
func (s *Storage) DeleteSecret(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM secrets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrSecretNotFound
	}

	return nil
}

func (s *Storage) querySecrets(ctx context.Context, query string, args ...any) ([]*models.StoredSecret, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query secrets: %w", err)
	}
	defer rows.Close()

	var secrets []*models.StoredSecret
	for rows.Next() {
		secret, err := scanSecret(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan secret: %w", err)
		}
		secrets = append(secrets, secret)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate secrets: %w", err)
	}

	return secrets, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSecret(row rowScanner) (*models.StoredSecret, error) {
	secret := &models.StoredSecret{}
	var createdAt, updatedAt int64

	err := row.Scan(
		&secret.ID,
		&secret.Title,
		&secret.Website,
		&secret.Username,
		&secret.EncryptedPassword,
		&secret.Notes,
		&secret.Category,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	secret.CreatedAt = millisToTime(createdAt)
	secret.UpdatedAt = millisToTime(updatedAt)

	return secret, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func timeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}
