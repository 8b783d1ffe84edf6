package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStateStore persists client-side session leftovers: the legacy
// bearer token and cached display fields used by the OAuth redirect
// flow, plus the cookie rows behind PersistentJar.
type SQLiteStateStore struct {
	db *sql.DB
}

func NewSQLiteStateStore(dbPath string) (*SQLiteStateStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteStateStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStateStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS cookies (
  name TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  path TEXT NOT NULL,
  expires TEXT NOT NULL,
  secure INTEGER NOT NULL,
  http_only INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create state tables: %w", err)
	}
	return nil
}

func (s *SQLiteStateStore) Close() error { return s.db.Close() }

const (
	keyLegacyToken = "legacy_token"
	keyUsername    = "display_username"
	keyEmail       = "display_email"
)

func (s *SQLiteStateStore) setKV(ctx context.Context, key, value string) error {
	const stmt = `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value`
	if _, err := s.db.ExecContext(ctx, stmt, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStateStore) getKV(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStateStore) SaveLegacyToken(ctx context.Context, token string) error {
	return s.setKV(ctx, keyLegacyToken, token)
}

func (s *SQLiteStateStore) LegacyToken(ctx context.Context) (string, error) {
	return s.getKV(ctx, keyLegacyToken)
}

func (s *SQLiteStateStore) SaveDisplay(ctx context.Context, username, email string) error {
	if err := s.setKV(ctx, keyUsername, username); err != nil {
		return err
	}
	return s.setKV(ctx, keyEmail, email)
}

func (s *SQLiteStateStore) Display(ctx context.Context) (string, string, error) {
	username, err := s.getKV(ctx, keyUsername)
	if err != nil {
		return "", "", err
	}
	email, err := s.getKV(ctx, keyEmail)
	if err != nil {
		return "", "", err
	}
	return username, email, nil
}

// ClearIdentity drops everything tied to the signed-in user: cached
// display fields, the legacy token, and persisted cookies.
func (s *SQLiteStateStore) ClearIdentity(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("clear kv: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cookies`); err != nil {
		return fmt.Errorf("clear cookies: %w", err)
	}
	return nil
}

// ─── cookie persistence ──────────────────────────────────────────────────────

type cookieRow struct {
	Name     string
	Value    string
	Path     string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
}

func (s *SQLiteStateStore) upsertCookie(ctx context.Context, c cookieRow) error {
	const stmt = `
INSERT INTO cookies (name, value, path, expires, secure, http_only)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  value=excluded.value,
  path=excluded.path,
  expires=excluded.expires,
  secure=excluded.secure,
  http_only=excluded.http_only`
	_, err := s.db.ExecContext(ctx, stmt,
		c.Name, c.Value, c.Path, c.Expires.UTC().Format(time.RFC3339), c.Secure, c.HTTPOnly)
	if err != nil {
		return fmt.Errorf("upsert cookie %s: %w", c.Name, err)
	}
	return nil
}

func (s *SQLiteStateStore) deleteCookie(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete cookie %s: %w", name, err)
	}
	return nil
}

func (s *SQLiteStateStore) listCookies(ctx context.Context) ([]cookieRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, value, path, expires, secure, http_only FROM cookies`)
	if err != nil {
		return nil, fmt.Errorf("list cookies: %w", err)
	}
	defer rows.Close()

	var out []cookieRow
	for rows.Next() {
		var c cookieRow
		var expires string
		if err := rows.Scan(&c.Name, &c.Value, &c.Path, &expires, &c.Secure, &c.HTTPOnly); err != nil {
			return nil, fmt.Errorf("scan cookie: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, expires); err == nil {
			c.Expires = t
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
