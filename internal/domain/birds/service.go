package birds

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/ports/blob"
	"passaro-ok/internal/ports/capabilities"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoPhoto      = errors.New("bird has no photo")
)

type Service struct {
	repo   Repository
	photos blob.Store
	caps   capabilities.Resolver
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, photos blob.Store, caps capabilities.Resolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		photos: photos,
		caps:   caps,
		log:    log.With(logger.Fields{"module": "birds"}),
		now:    time.Now,
	}
}

type CreateInput struct {
	Name       string
	Species    string
	Age        string
	AcquiredOn *time.Time
	Photo      *Photo
}

// FreeBirdLimit es cuántos pájaros se permiten sin premium.
const FreeBirdLimit = 1

// DefaultSpecies es la especie que se guarda si el formulario viene vacío.
const DefaultSpecies = "Outro"

// Create registra un pájaro nuevo en GREEN.
// Sin premium solo se permite un pájaro; el repositorio revalida el límite bajo su lock.
func (s *Service) Create(ctx context.Context, in CreateInput) (Bird, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Bird{}, ErrInvalidInput
	}

	limit := 0
	if !capabilities.Allowed(ctx, s.caps, capabilities.CapabilityMultipleBirds) {
		limit = FreeBirdLimit
		n, err := s.repo.Count(ctx)
		if err != nil {
			return Bird{}, err
		}
		if n >= limit {
			return Bird{}, capabilities.Locked(capabilities.CapabilityMultipleBirds)
		}
	}

	now := s.now()
	b := Bird{
		ID:         uuid.NewString(),
		Name:       name,
		Species:    speciesOrDefault(in.Species),
		Age:        strings.TrimSpace(in.Age),
		AcquiredOn: in.AcquiredOn,
		Status:     health.StatusGreen,
		LastUpdate: now,
		CreatedAt:  now,
	}

	if in.Photo != nil {
		if err := s.storePhoto(ctx, &b, *in.Photo); err != nil {
			return Bird{}, err
		}
	}

	if err := s.repo.Create(ctx, b, limit); err != nil {
		s.dropPhoto(ctx, b)
		if errors.Is(err, ErrLimitReached) {
			return Bird{}, capabilities.Locked(capabilities.CapabilityMultipleBirds)
		}
		return Bird{}, err
	}

	s.log.Info("bird created", logger.Fields{"bird_id": b.ID, "species": b.Species})
	return b, nil
}

func speciesOrDefault(s string) string {
	if v := CanonicalSpecies(s); v != "" {
		return v
	}
	return DefaultSpecies
}

func (s *Service) GetByID(ctx context.Context, id string) (Bird, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Bird{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Bird, error) {
	return s.repo.List(ctx)
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
type UpdateInput struct {
	Name    *string
	Species *string
	Age     *string

	// AcquiredOn.Present=true con Value=nil limpia la fecha.
	AcquiredOn OptionalDate

	Photo       *Photo
	RemovePhoto bool
}

type OptionalDate struct {
	Present bool
	Value   *time.Time
}

// Update edita el perfil. Status y LastUpdate no se tocan aquí.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Bird, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return Bird{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Bird{}, ErrInvalidInput
		}
		b.Name = v
	}
	if in.Species != nil {
		b.Species = speciesOrDefault(*in.Species)
	}
	if in.Age != nil {
		b.Age = strings.TrimSpace(*in.Age)
	}
	if in.AcquiredOn.Present {
		b.AcquiredOn = in.AcquiredOn.Value
	}

	hadPhoto := b.HasPhoto()
	switch {
	case in.Photo != nil:
		if err := s.storePhoto(ctx, &b, *in.Photo); err != nil {
			return Bird{}, err
		}
	case in.RemovePhoto && hadPhoto:
		s.dropPhoto(ctx, b)
		b.PhotoKey = ""
		b.PhotoContentType = ""
	}

	if err := s.repo.Update(ctx, b); err != nil {
		// Sin foto previa (o sin pájaro) el blob nuevo quedaría huérfano.
		if in.Photo != nil && (!hadPhoto || errors.Is(err, ErrNotFound)) {
			s.dropPhoto(ctx, b)
		}
		return Bird{}, err
	}
	return b, nil
}

// Delete borra el pájaro; el repositorio arrastra logs y registros avanzados.
func (s *Service) Delete(ctx context.Context, id string) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, b.ID); err != nil {
		return err
	}
	s.dropPhoto(ctx, b)

	s.log.Info("bird deleted", logger.Fields{"bird_id": b.ID})
	return nil
}

// Photo abre la foto del pájaro. El llamador cierra el reader.
func (s *Service) Photo(ctx context.Context, id string) (io.ReadCloser, string, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if !b.HasPhoto() || s.photos == nil {
		return nil, "", ErrNoPhoto
	}
	info, rc, err := s.photos.Get(ctx, b.PhotoKey)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			return nil, "", ErrNoPhoto
		}
		return nil, "", err
	}
	ct := info.ContentType
	if ct == "" {
		ct = b.PhotoContentType
	}
	return rc, ct, nil
}

// ShareText arma el texto que se comparte desde la pantalla de estado.
func ShareText(b Bird) string {
	return fmt.Sprintf("Status do %s: %s. %s - via App Pássaro OK 🐦", b.Name, b.Status.Text(), b.Status.Message())
}

func (s *Service) storePhoto(ctx context.Context, b *Bird, p Photo) error {
	if s.photos == nil {
		return fmt.Errorf("store photo: %w", ErrInvalidInput)
	}
	if len(p.Data) == 0 || len(p.Data) > MaxPhotoBytes {
		return ErrInvalidPhoto
	}
	key := photoKey(b.ID)
	if _, err := s.photos.Put(ctx, key, bytes.NewReader(p.Data), blob.PutOptions{
		ContentType: p.ContentType,
		Metadata:    map[string]string{"bird_id": b.ID},
	}); err != nil {
		return fmt.Errorf("store photo: %w", err)
	}
	b.PhotoKey = key
	b.PhotoContentType = p.ContentType
	return nil
}

// dropPhoto es best-effort: un blob huérfano no debe romper el borrado.
func (s *Service) dropPhoto(ctx context.Context, b Bird) {
	if s.photos == nil || !b.HasPhoto() {
		return
	}
	if _, err := s.photos.Delete(ctx, b.PhotoKey); err != nil {
		s.log.Warn("photo delete failed", logger.Fields{"bird_id": b.ID, "key": b.PhotoKey, "err": err})
	}
}
