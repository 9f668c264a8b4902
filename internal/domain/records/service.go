package records

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/ports/capabilities"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type BirdLookup interface {
	GetByID(ctx context.Context, id string) (birds.Bird, error)
}

type Service struct {
	repo  Repository
	birds BirdLookup
	caps  capabilities.Resolver
	now   func() time.Time
}

func NewService(repo Repository, birdsLookup BirdLookup, caps capabilities.Resolver) *Service {
	return &Service{
		repo:  repo,
		birds: birdsLookup,
		caps:  caps,
		now:   time.Now,
	}
}

type AddInput struct {
	WeightGrams *float64
	IsMolting   *bool
	Event       string
}

// Add agrega un registro avanzado. Al menos un campo debe venir informado.
func (s *Service) Add(ctx context.Context, birdID string, in AddInput) (AdvancedRecord, error) {
	if err := capabilities.Require(ctx, s.caps, capabilities.CapabilityAdvancedRecords); err != nil {
		return AdvancedRecord{}, err
	}

	event := strings.TrimSpace(in.Event)
	if in.WeightGrams == nil && in.IsMolting == nil && event == "" {
		return AdvancedRecord{}, ErrInvalidInput
	}
	if in.WeightGrams != nil {
		w := *in.WeightGrams
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return AdvancedRecord{}, ErrInvalidInput
		}
	}

	b, err := s.birds.GetByID(ctx, strings.TrimSpace(birdID))
	if err != nil {
		return AdvancedRecord{}, err
	}

	rec := AdvancedRecord{
		ID:          uuid.NewString(),
		BirdID:      b.ID,
		Date:        s.now(),
		WeightGrams: in.WeightGrams,
		IsMolting:   in.IsMolting,
		Event:       event,
	}
	if err := s.repo.Append(ctx, rec); err != nil {
		return AdvancedRecord{}, err
	}
	return rec, nil
}

// List devuelve los registros avanzados del pájaro (premium).
func (s *Service) List(ctx context.Context, birdID string) ([]AdvancedRecord, error) {
	if err := capabilities.Require(ctx, s.caps, capabilities.CapabilityAdvancedRecords); err != nil {
		return nil, err
	}
	b, err := s.birds.GetByID(ctx, strings.TrimSpace(birdID))
	if err != nil {
		return nil, err
	}
	return s.repo.ListByBird(ctx, b.ID)
}
