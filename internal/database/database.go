package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn *sql.DB
	path string
}

func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, path: path}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) Begin() (*sql.Tx, error) {
	return db.conn.Begin()
}

func (db *DB) Exec(query string, args ...any) (sql.Result, error) {
	return db.conn.Exec(query, args...)
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	return db.conn.Query(query, args...)
}

func (db *DB) QueryRow(query string, args ...any) *sql.Row {
	return db.conn.QueryRow(query, args...)
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS category_tokens (
		category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		token TEXT NOT NULL,
		position INTEGER NOT NULL,
		frequency INTEGER NOT NULL CHECK (frequency > 0),
		PRIMARY KEY (category_id, token)
	);

	CREATE TABLE IF NOT EXISTS document_frequencies (
		token TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		frequency INTEGER NOT NULL CHECK (frequency > 0)
	);

	CREATE TABLE IF NOT EXISTS model_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_categories_position ON categories(position);
	CREATE INDEX IF NOT EXISTS idx_category_tokens_position ON category_tokens(category_id, position);
	CREATE INDEX IF NOT EXISTS idx_document_frequencies_position ON document_frequencies(position);
	`

	_, err := db.conn.Exec(schema)
	return err
}
