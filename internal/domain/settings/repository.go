package settings

import "context"

type Repository interface {
	// Get nunca falla por ausencia: sin nada guardado devuelve Defaults().
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
