package kv

import "context"

// Entry es un par clave/valor persistido tal cual (sin versionado).
type Entry struct {
	Key   string
	Value []byte
}

// Store es el almacenamiento local clave-valor.
// Put sobrescribe todas las entradas dadas; en backends SQL lo hace en una sola transacción.
type Store interface {
	Load(ctx context.Context) (map[string][]byte, error)
	Put(ctx context.Context, entries ...Entry) error
	Close() error
}
