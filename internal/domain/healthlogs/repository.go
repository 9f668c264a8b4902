package healthlogs

import "context"

type Repository interface {
	Append(ctx context.Context, l HealthLog) error

	// ListByBird devuelve los logs del pájaro, más reciente primero.
	ListByBird(ctx context.Context, birdID string) ([]HealthLog, error)
}
