package snapshot

import (
	"context"
	"errors"
	"sort"
	"strings"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/domain/records"
	"passaro-ok/internal/domain/settings"
)

// -------------------------
// birds
// -------------------------

type birdRepo struct{ s *Store }

func (r birdRepo) Create(ctx context.Context, b birds.Bird, limit int) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("bird id required")
	}
	if s.findBird(b.ID) >= 0 {
		return errors.New("bird already exists")
	}
	if limit > 0 && len(s.birds) >= limit {
		return birds.ErrLimitReached
	}
	next := append(append(make([]birds.Bird, 0, len(s.birds)+1), s.birds...), b)
	return s.commit(ctx, pending{birds: &next})
}

func (r birdRepo) Update(ctx context.Context, b birds.Bird) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findBird(b.ID)
	if i < 0 {
		return birds.ErrNotFound
	}
	// Status y LastUpdate solo los mueve un health log.
	b.Status = s.birds[i].Status
	b.LastUpdate = s.birds[i].LastUpdate

	next := append([]birds.Bird(nil), s.birds...)
	next[i] = b
	return s.commit(ctx, pending{birds: &next})
}

func (r birdRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findBird(id)
	if i < 0 {
		return birds.Bird{}, birds.ErrNotFound
	}
	return s.birds[i], nil
}

func (r birdRepo) List(ctx context.Context) ([]birds.Bird, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]birds.Bird, 0, len(s.birds)), s.birds...), nil
}

func (r birdRepo) Count(ctx context.Context) (int, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.birds), nil
}

// Delete borra el pájaro y arrastra sus logs y registros en una sola escritura.
func (r birdRepo) Delete(ctx context.Context, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findBird(id) < 0 {
		return birds.ErrNotFound
	}

	nextBirds := make([]birds.Bird, 0, len(s.birds))
	for _, b := range s.birds {
		if b.ID != id {
			nextBirds = append(nextBirds, b)
		}
	}
	nextLogs := make([]healthlogs.HealthLog, 0, len(s.logs))
	for _, l := range s.logs {
		if l.BirdID != id {
			nextLogs = append(nextLogs, l)
		}
	}
	nextRecords := make([]records.AdvancedRecord, 0, len(s.records))
	for _, a := range s.records {
		if a.BirdID != id {
			nextRecords = append(nextRecords, a)
		}
	}

	return s.commit(ctx, pending{birds: &nextBirds, logs: &nextLogs, records: &nextRecords})
}

// -------------------------
// health logs
// -------------------------

type logRepo struct{ s *Store }

// Append agrega el log y deja status/last update del pájaro iguales a los del log.
func (r logRepo) Append(ctx context.Context, l healthlogs.HealthLog) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findBird(l.BirdID)
	if i < 0 {
		return birds.ErrNotFound
	}

	nextLogs := append(append(make([]healthlogs.HealthLog, 0, len(s.logs)+1), s.logs...), l)
	nextBirds := append([]birds.Bird(nil), s.birds...)
	nextBirds[i].Status = l.ResultStatus
	nextBirds[i].LastUpdate = l.Date

	return s.commit(ctx, pending{birds: &nextBirds, logs: &nextLogs})
}

func (r logRepo) ListByBird(ctx context.Context, birdID string) ([]healthlogs.HealthLog, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]healthlogs.HealthLog, 0)
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].BirdID == birdID {
			out = append(out, s.logs[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// -------------------------
// advanced records
// -------------------------

type recordRepo struct{ s *Store }

func (r recordRepo) Append(ctx context.Context, a records.AdvancedRecord) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findBird(a.BirdID) < 0 {
		return birds.ErrNotFound
	}
	next := append(append(make([]records.AdvancedRecord, 0, len(s.records)+1), s.records...), a)
	return s.commit(ctx, pending{records: &next})
}

func (r recordRepo) ListByBird(ctx context.Context, birdID string) ([]records.AdvancedRecord, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]records.AdvancedRecord, 0)
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].BirdID == birdID {
			out = append(out, s.records[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// -------------------------
// settings
// -------------------------

type settingsRepo struct{ s *Store }

func (r settingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings, nil
}

func (r settingsRepo) Save(ctx context.Context, st settings.Settings) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Reminder.Time == "" {
		st.Reminder.Time = settings.DefaultReminderTime
	}
	return s.commit(ctx, pending{settings: &st})
}
