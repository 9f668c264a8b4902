package records

import "context"

type Repository interface {
	Append(ctx context.Context, r AdvancedRecord) error

	// ListByBird devuelve los registros del pájaro, más reciente primero.
	ListByBird(ctx context.Context, birdID string) ([]AdvancedRecord, error)
}
