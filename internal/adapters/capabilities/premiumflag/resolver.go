package premiumflag

import (
	"context"

	"passaro-ok/internal/domain/settings"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/ports/capabilities"
)

// Resolver habilita todas las capabilities cuando el flag local "premium" está en true.
// Si no, consulta el upstream opcional (plans-features). Un fallo del upstream
// cuenta como bloqueado: la app sigue funcionando en modo gratuito.
type Resolver struct {
	flags    settings.Repository
	upstream capabilities.Resolver
	log      logger.Logger
}

func New(flags settings.Repository, upstream capabilities.Resolver, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{
		flags:    flags,
		upstream: upstream,
		log:      log.With(logger.Fields{"component": "premiumflag"}),
	}
}

func (r *Resolver) Has(ctx context.Context, c capabilities.Capability) (bool, error) {
	st, err := r.flags.Get(ctx)
	if err != nil {
		return false, err
	}
	if st.Premium {
		return true, nil
	}

	if r.upstream != nil {
		ok, err := r.upstream.Has(ctx, c)
		switch {
		case err != nil:
			r.log.Warn("capability upstream failed", logger.Fields{"capability": string(c), "err": err})
		case ok:
			return true, nil
		}
	}
	return false, nil
}
