package capabilities

import (
	"context"
	"errors"

	"passaro-ok/internal/platform/metrics"
)

// Capability es una funcionalidad que puede quedar bloqueada sin premium.
type Capability string

const (
	CapabilityMultipleBirds   Capability = "birds:multiple"
	CapabilityFullHistory     Capability = "history:full"
	CapabilityExport          Capability = "history:export"
	CapabilityAdvancedRecords Capability = "records:advanced"
	CapabilityLibraryContent  Capability = "library:content"
	CapabilityCustomReminders Capability = "reminders:custom"
)

// All lista todas las capabilities conocidas.
var All = []Capability{
	CapabilityMultipleBirds,
	CapabilityFullHistory,
	CapabilityExport,
	CapabilityAdvancedRecords,
	CapabilityLibraryContent,
	CapabilityCustomReminders,
}

// Notice es el aviso que ve el usuario al tocar algo bloqueado.
const Notice = "Função Premium — disponível em breve!"

// ErrLocked indica que la capability no está habilitada para el usuario.
var ErrLocked = errors.New("capability locked")

// LockedError lleva la capability concreta; errors.Is(err, ErrLocked) es true.
type LockedError struct {
	Capability Capability
}

func (e *LockedError) Error() string {
	return "capability locked: " + string(e.Capability)
}

func (e *LockedError) Unwrap() error { return ErrLocked }

// Resolver decide si una capability está disponible.
type Resolver interface {
	Has(ctx context.Context, c Capability) (bool, error)
}

// Locked arma el *LockedError de una acción bloqueada y la cuenta en métricas.
func Locked(c Capability) error {
	metrics.LockedActions.WithLabelValues(string(c)).Inc()
	return &LockedError{Capability: c}
}

// Require devuelve *LockedError si la capability no está disponible.
func Require(ctx context.Context, r Resolver, c Capability) error {
	if r == nil {
		return Locked(c)
	}
	ok, err := r.Has(ctx, c)
	if err != nil {
		return err
	}
	if !ok {
		return Locked(c)
	}
	return nil
}

// Allowed consulta sin bloquear nada (lecturas degradadas, límites).
// Errores del resolver cuentan como no habilitado. No suma a LockedActions.
func Allowed(ctx context.Context, r Resolver, c Capability) bool {
	if r == nil {
		return false
	}
	ok, err := r.Has(ctx, c)
	return err == nil && ok
}
