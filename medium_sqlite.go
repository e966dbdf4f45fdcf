package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteMedium persists keys in a single-table SQLite database. It is an
// alternative to FileMedium for devices where a database file is easier to
// back up than a directory; the storage contract is identical.
type SQLiteMedium struct {
	db *sql.DB
}

// OpenSQLiteMedium opens (creating if needed) the database at path.
func OpenSQLiteMedium(path string) (*SQLiteMedium, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite medium %q: %w", path, err)
	}
	// The store is mutated by a single execution context only.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite medium %q: %w", path, err)
	}
	return &SQLiteMedium{db: db}, nil
}

// Read implements Medium.
func (m *SQLiteMedium) Read(key string) ([]byte, bool, error) {
	var v string
	err := m.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: select %q: %v", ErrPersistenceRead, key, err)
	}
	return []byte(v), true, nil
}

// Write implements Medium.
func (m *SQLiteMedium) Write(key string, data []byte) error {
	_, err := m.db.Exec(
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("%w: upsert %q: %v", ErrPersistenceWrite, key, err)
	}
	return nil
}

// Close releases the underlying database.
func (m *SQLiteMedium) Close() error { return m.db.Close() }
