package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// memoryPath путь базы в памяти (для тестов)
const memoryPath = ":memory:"

// Storage хранит записи секретов в SQLite.
// Пароли лежат в таблице только в виде токенов сервиса шифрования.
type Storage struct {
	db *sql.DB
}

// New открывает (или создает) базу секретов и применяет миграции
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Один писатель, для :memory: это еще и единственная копия БД
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := configure(ctx, db, dbPath == memoryPath); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	if err := migrate(ctx, db); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &Storage{db: db}, nil
}

// configure проверяет соединение и выставляет pragma.
// secure_delete затирает страницы удаленных секретов, а не только помечает их свободными.
func configure(ctx context.Context, db *sql.DB, inMemory bool) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA secure_delete = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	if !inMemory {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set %q: %w", pragma, err)
		}
	}
	return nil
}

// migrate применяет встроенные миграции через goose.Provider (без глобального состояния goose)
func migrate(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	for _, r := range results {
		slog.Debug("vault migration applied", "version", r.Source.Version, "duration", r.Duration)
	}

	return nil
}

// Close закрывает соединение с базой
func (s *Storage) Close() error {
	return s.db.Close()
}

// DB возвращает соединение (для тестов)
func (s *Storage) DB() *sql.DB {
	return s.db
}
