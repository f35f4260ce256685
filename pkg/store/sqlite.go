package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteFileName is the database created inside the configured path.
const SQLiteFileName = "tasklists.db"

type sqlitePersistence struct {
	db     *sql.DB
	dir    string
	dbPath string
}

func openSQLite(dir string) (Persistence, error) {
	if dir == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	dbPath := filepath.Join(dir, SQLiteFileName)
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	p := &sqlitePersistence{db: db, dir: dir, dbPath: dbPath}
	if err := p.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

func (p *sqlitePersistence) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`
	if _, err := p.db.Exec(ddl); err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

func (p *sqlitePersistence) Read(key string) ([]byte, error) {
	var val []byte
	err := p.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *sqlitePersistence) Write(key string, value []byte) error {
	_, err := p.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *sqlitePersistence) Erase(key string) error {
	if _, err := p.db.Exec(`DELETE FROM kv WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *sqlitePersistence) Keys(ctx context.Context) []string {
	rows, err := p.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key;`)
	if err != nil {
		log.WithError(err).Warn("store: list sqlite keys")
		return nil
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			log.WithError(err).Warn("store: scan sqlite key")
			continue
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		log.WithError(err).Warn("store: iterate sqlite keys")
	}
	return keys
}

// Watch reports any change to the database file as an invalidation since a
// file write cannot be attributed to a key.
func (p *sqlitePersistence) Watch(ctx context.Context) (<-chan Event, error) {
	base := filepath.Base(p.dbPath)
	return watchDir(ctx, p.dir, func(name string) Event {
		if !strings.HasPrefix(name, base) {
			return Event{}
		}
		return Event{Type: EventInvalidated}
	})
}

func (p *sqlitePersistence) Location() string {
	return p.dbPath
}

func (p *sqlitePersistence) Close() error {
	if p.db == nil {
		return nil
	}
	return p.db.Close()
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
