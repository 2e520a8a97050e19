package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Database struct {
	*sqlx.DB
}

func NewDatabaseConnection(dbDriver string, dbConnectionStr string) (*Database, error) {
	database, err := sqlx.Connect(dbDriver, dbConnectionStr)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка пинга БД: %w", err)
	}

	log.Println("Подключение к БД успешно выполнено")
	return &Database{
		database,
	}, nil
}

// Migrate : создаёт таблицы files и users, если их ещё нет
func (db *Database) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS files (
		storage_key   TEXT PRIMARY KEY,
		owner         TEXT NOT NULL,
		original_name TEXT NOT NULL,
		mime_type     TEXT NOT NULL,
		size_bytes    BIGINT NOT NULL,
		uploaded_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		share_password TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_files_owner ON files (owner);

	CREATE TABLE IF NOT EXISTS users (
		uuid       TEXT PRIMARY KEY,
		username   TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		mobile     TEXT NOT NULL,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ошибка миграции схемы БД: %w", err)
	}
	return nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}

	return nil
}
