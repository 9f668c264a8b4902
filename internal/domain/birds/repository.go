package birds

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("bird not found")
	ErrLimitReached = errors.New("bird limit reached")
)

type Repository interface {
	// Create guarda b. Con limit > 0 devuelve ErrLimitReached si ya hay limit
	// pájaros; el conteo y el alta van bajo el mismo lock.
	Create(ctx context.Context, b Bird, limit int) error
	Update(ctx context.Context, b Bird) error
	GetByID(ctx context.Context, id string) (Bird, error)
	List(ctx context.Context) ([]Bird, error)
	Count(ctx context.Context) (int, error)

	// Delete borra el pájaro junto con sus health logs y registros avanzados.
	Delete(ctx context.Context, id string) error
}
