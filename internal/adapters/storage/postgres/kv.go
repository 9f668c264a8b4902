package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"passaro-ok/internal/adapters/storage/migrations"
	"passaro-ok/internal/ports/kv"
)

// KV es el store clave-valor sobre la tabla kv de Postgres.
type KV struct {
	db *sql.DB
}

// OpenKV conecta, migra y devuelve el store.
func OpenKV(dsn string) (*KV, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := migrations.MigratePostgres(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &KV{db: db}, nil
}

func (s *KV) Load(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			k string
			v []byte
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (s *KV) Put(ctx context.Context, entries ...kv.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, q, e.Key, e.Value); err != nil {
			return fmt.Errorf("upsert %s: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

func (s *KV) Close() error { return s.db.Close() }
