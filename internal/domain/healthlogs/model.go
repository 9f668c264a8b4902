package healthlogs

import (
	"time"

	"passaro-ok/internal/domain/health"
)

// HealthLog es el resultado inmutable de un chequeo. Solo se agregan, nunca se editan.
type HealthLog struct {
	ID     string
	BirdID string
	Date   time.Time

	// Labels elegidos (lo que se muestra en el historial).
	Appetite  string
	Activity  string
	Droppings string
	Singing   string

	ResultStatus health.Status
	Notes        string
}

// History es el historial visible de un pájaro, más reciente primero.
type History struct {
	Logs      []HealthLog
	Total     int
	Truncated bool // sin premium solo se ven los últimos FreeHistoryLimit
}

// FreeHistoryLimit es cuántos logs ve un usuario sin premium.
const FreeHistoryLimit = 3
