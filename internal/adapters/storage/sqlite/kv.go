package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"passaro-ok/internal/adapters/storage/migrations"
	"passaro-ok/internal/ports/kv"

	_ "modernc.org/sqlite" // driver sqlite puro Go
)

// KV guarda el store clave-valor en una tabla SQLite.
type KV struct {
	db   *sql.DB
	path string
}

// Open abre (o crea) la base en path y aplica migraciones.
func Open(path string) (*KV, error) {
	if path == "" {
		path = "passaro.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Un solo escritor; evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)

	if err := migrations.MigrateSQLite(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &KV{db: db, path: path}, nil
}

func (s *KV) Load(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("select kv: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			k string
			v []byte
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (s *KV) Put(ctx context.Context, entries ...kv.Entry) (retErr error) {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kv(key, value) VALUES(?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
			e.Key, e.Value,
		); err != nil {
			return fmt.Errorf("upsert %s: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

func (s *KV) Close() error { return s.db.Close() }

// Path devuelve la ruta configurada de la base.
func (s *KV) Path() string { return s.path }
