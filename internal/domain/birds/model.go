package birds

import (
	"time"

	"passaro-ok/internal/domain/health"
)

// Bird es el perfil de un pájaro registrado.
type Bird struct {
	ID string

	Name    string
	Species string // sugerencia canónica (ver SpeciesOptions) o texto libre
	Age     string // texto libre: "2 anos", "filhote"...

	AcquiredOn *time.Time

	// Status solo cambia cuando se completa un chequeo.
	Status     health.Status
	LastUpdate time.Time

	// Foto opaca guardada en el blob store; vacío = sin foto.
	PhotoKey         string
	PhotoContentType string

	CreatedAt time.Time
}

func (b Bird) HasPhoto() bool { return b.PhotoKey != "" }
