package healthlogs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/platform/metrics"
	"passaro-ok/internal/ports/capabilities"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncompleteAnswers: el formulario no habilita "salvar" hasta responder las cuatro categorías.
	ErrIncompleteAnswers = errors.New("all four categories must be answered")
)

// BirdLookup evita depender del servicio completo de birds.
type BirdLookup interface {
	GetByID(ctx context.Context, id string) (birds.Bird, error)
}

type Service struct {
	repo  Repository
	birds BirdLookup
	caps  capabilities.Resolver
	log   logger.Logger
	now   func() time.Time
}

func NewService(repo Repository, birdsLookup BirdLookup, caps capabilities.Resolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:  repo,
		birds: birdsLookup,
		caps:  caps,
		log:   log.With(logger.Fields{"module": "healthlogs"}),
		now:   time.Now,
	}
}

type RecordInput struct {
	Answers health.Answers
	Notes   string
}

// Record clasifica un chequeo completo y lo agrega al historial.
// El repositorio actualiza status y last update del pájaro en la misma escritura,
// así el status del pájaro siempre es el del último log.
func (s *Service) Record(ctx context.Context, birdID string, in RecordInput) (HealthLog, error) {
	birdID = strings.TrimSpace(birdID)
	if birdID == "" {
		return HealthLog{}, ErrInvalidInput
	}
	if !in.Answers.Complete() {
		return HealthLog{}, ErrIncompleteAnswers
	}

	b, err := s.birds.GetByID(ctx, birdID)
	if err != nil {
		return HealthLog{}, err
	}

	status := health.Classify(in.Answers)
	l := HealthLog{
		ID:           uuid.NewString(),
		BirdID:       b.ID,
		Date:         s.now(),
		Appetite:     in.Answers[health.CategoryAppetite].Label,
		Activity:     in.Answers[health.CategoryActivity].Label,
		Droppings:    in.Answers[health.CategoryDroppings].Label,
		Singing:      in.Answers[health.CategorySinging].Label,
		ResultStatus: status,
		Notes:        strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Append(ctx, l); err != nil {
		return HealthLog{}, err
	}

	metrics.HealthChecks.WithLabelValues(string(status)).Inc()
	s.log.Info("health check recorded", logger.Fields{"bird_id": b.ID, "log_id": l.ID, "status": string(status)})
	return l, nil
}

// History devuelve el historial; sin premium se corta en FreeHistoryLimit.
func (s *Service) History(ctx context.Context, birdID string) (History, error) {
	all, err := s.listForBird(ctx, birdID)
	if err != nil {
		return History{}, err
	}

	h := History{Logs: all, Total: len(all)}
	if len(all) > FreeHistoryLimit && !capabilities.Allowed(ctx, s.caps, capabilities.CapabilityFullHistory) {
		h.Logs = all[:FreeHistoryLimit]
		h.Truncated = true
	}
	return h, nil
}

var csvHeader = []string{"date", "appetite", "activity", "droppings", "singing", "status", "notes"}

// ExportCSV escribe el historial completo del pájaro (premium).
func (s *Service) ExportCSV(ctx context.Context, birdID string, w io.Writer) error {
	if err := capabilities.Require(ctx, s.caps, capabilities.CapabilityExport); err != nil {
		return err
	}

	all, err := s.listForBird(ctx, birdID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range all {
		if err := cw.Write([]string{
			l.Date.UTC().Format(time.RFC3339),
			l.Appetite,
			l.Activity,
			l.Droppings,
			l.Singing,
			string(l.ResultStatus),
			l.Notes,
		}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *Service) listForBird(ctx context.Context, birdID string) ([]HealthLog, error) {
	b, err := s.birds.GetByID(ctx, strings.TrimSpace(birdID))
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBird(ctx, b.ID)
}
