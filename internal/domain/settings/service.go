package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/ports/capabilities"
)

var ErrInvalidTime = errors.New("reminder time must be HH:MM")

type Service struct {
	repo Repository
	caps capabilities.Resolver
	log  logger.Logger
}

func NewService(repo Repository, caps capabilities.Resolver, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		caps: caps,
		log:  log.With(logger.Fields{"module": "settings"}),
	}
}

func (s *Service) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

// CompleteOnboarding marca la introducción como vista. Es idempotente.
func (s *Service) CompleteOnboarding(ctx context.Context) (Settings, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	if cur.Onboarded {
		return cur, nil
	}
	cur.Onboarded = true
	if err := s.repo.Save(ctx, cur); err != nil {
		return Settings{}, err
	}
	return cur, nil
}

// SetPremium cambia el flag local de premium.
func (s *Service) SetPremium(ctx context.Context, on bool) (Settings, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	cur.Premium = on
	if err := s.repo.Save(ctx, cur); err != nil {
		return Settings{}, err
	}
	s.log.Info("premium flag changed", logger.Fields{"premium": on})
	return cur, nil
}

type ReminderInput struct {
	Enabled bool
	Time    string // vacío = mantener la hora guardada
}

// UpdateReminder guarda el recordatorio diario.
// Desactivar siempre se permite; una hora distinta de la de fábrica es premium.
func (s *Service) UpdateReminder(ctx context.Context, in ReminderInput) (Settings, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		return Settings{}, err
	}

	if !in.Enabled {
		cur.Reminder.Enabled = false
		if err := s.repo.Save(ctx, cur); err != nil {
			return Settings{}, err
		}
		return cur, nil
	}

	hhmm := cur.Reminder.Time
	if v := strings.TrimSpace(in.Time); v != "" {
		hhmm, err = ParseReminderTime(v)
		if err != nil {
			return Settings{}, err
		}
	}
	if hhmm == "" {
		hhmm = DefaultReminderTime
	}
	if hhmm != DefaultReminderTime {
		if err := capabilities.Require(ctx, s.caps, capabilities.CapabilityCustomReminders); err != nil {
			return Settings{}, err
		}
	}

	cur.Reminder = Reminder{Enabled: true, Time: hhmm}
	if err := s.repo.Save(ctx, cur); err != nil {
		return Settings{}, err
	}
	return cur, nil
}

// NextReminder devuelve el próximo disparo en la zona de now.
// ok=false si el recordatorio está apagado.
func NextReminder(r Reminder, now time.Time) (time.Time, bool) {
	if !r.Enabled {
		return time.Time{}, false
	}
	t, err := time.Parse(timeLayout, r.Time)
	if err != nil {
		return time.Time{}, false
	}
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, true
}
