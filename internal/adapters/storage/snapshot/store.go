package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/domain/records"
	"passaro-ok/internal/domain/settings"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/platform/metrics"
	"passaro-ok/internal/ports/kv"
)

// Claves del store clave-valor.
const (
	KeyBirds           = "birds"
	KeyHealthLogs      = "healthLogs"
	KeyAdvancedRecords = "advancedRecords"
	KeyOnboarded       = "onboarded"
	KeyPremium         = "premium"
	KeyReminderEnabled = "reminderEnabled"
	KeyReminderTime    = "reminderTime"
)

// Store mantiene todo el estado en memoria y, en cada mutación, reescribe
// completas las colecciones afectadas en el kv. La memoria solo cambia si el
// Put fue exitoso.
type Store struct {
	mu  sync.RWMutex
	kv  kv.Store
	log logger.Logger

	birds    []birds.Bird
	logs     []healthlogs.HealthLog
	records  []records.AdvancedRecord
	settings settings.Settings
}

// Open hidrata el estado desde el kv. Claves ausentes = colección vacía / defaults.
func Open(ctx context.Context, store kv.Store, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		kv:       store,
		log:      log.With(logger.Fields{"component": "snapshot"}),
		settings: settings.Defaults(),
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw, err := s.kv.Load(ctx)
	if err != nil {
		return fmt.Errorf("load kv: %w", err)
	}

	if v, ok := raw[KeyBirds]; ok {
		var items []birdRecord
		if err := json.Unmarshal(v, &items); err != nil {
			return fmt.Errorf("decode %s: %w", KeyBirds, err)
		}
		for _, r := range items {
			b, err := r.toBird()
			if err != nil {
				return err
			}
			s.birds = append(s.birds, b)
		}
	}
	if v, ok := raw[KeyHealthLogs]; ok {
		var items []logRecord
		if err := json.Unmarshal(v, &items); err != nil {
			return fmt.Errorf("decode %s: %w", KeyHealthLogs, err)
		}
		for _, r := range items {
			s.logs = append(s.logs, r.toLog())
		}
	}
	if v, ok := raw[KeyAdvancedRecords]; ok {
		var items []advancedRecord
		if err := json.Unmarshal(v, &items); err != nil {
			return fmt.Errorf("decode %s: %w", KeyAdvancedRecords, err)
		}
		for _, r := range items {
			a, err := r.toRecord()
			if err != nil {
				return err
			}
			s.records = append(s.records, a)
		}
	}

	s.settings.Onboarded = string(raw[KeyOnboarded]) == "true"
	s.settings.Premium = string(raw[KeyPremium]) == "true"
	s.settings.Reminder.Enabled = string(raw[KeyReminderEnabled]) == "true"
	if v, ok := raw[KeyReminderTime]; ok {
		if t, err := settings.ParseReminderTime(string(v)); err == nil {
			s.settings.Reminder.Time = t
		} else {
			s.log.Warn("ignoring stored reminder time", logger.Fields{"value": string(v)})
		}
	}

	s.log.Debug("state loaded", logger.Fields{
		"birds":   len(s.birds),
		"logs":    len(s.logs),
		"records": len(s.records),
	})
	return nil
}

// pending es un cambio armado fuera de la memoria viva.
type pending struct {
	birds    *[]birds.Bird
	logs     *[]healthlogs.HealthLog
	records  *[]records.AdvancedRecord
	settings *settings.Settings
}

// commit persiste las colecciones tocadas en un solo Put y recién después
// las publica en memoria. Llamar con s.mu tomado.
func (s *Store) commit(ctx context.Context, p pending) error {
	var entries []kv.Entry

	if p.birds != nil {
		out := make([]birdRecord, 0, len(*p.birds))
		for _, b := range *p.birds {
			out = append(out, fromBird(b))
		}
		e, err := jsonEntry(KeyBirds, out)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	if p.logs != nil {
		out := make([]logRecord, 0, len(*p.logs))
		for _, l := range *p.logs {
			out = append(out, fromLog(l))
		}
		e, err := jsonEntry(KeyHealthLogs, out)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	if p.records != nil {
		out := make([]advancedRecord, 0, len(*p.records))
		for _, a := range *p.records {
			out = append(out, fromRecord(a))
		}
		e, err := jsonEntry(KeyAdvancedRecords, out)
		if err != nil {
			return err
		}
		entries = append(entries, e)
	}
	if p.settings != nil {
		st := *p.settings
		entries = append(entries,
			kv.Entry{Key: KeyOnboarded, Value: []byte(strconv.FormatBool(st.Onboarded))},
			kv.Entry{Key: KeyPremium, Value: []byte(strconv.FormatBool(st.Premium))},
			kv.Entry{Key: KeyReminderEnabled, Value: []byte(strconv.FormatBool(st.Reminder.Enabled))},
			kv.Entry{Key: KeyReminderTime, Value: []byte(st.Reminder.Time)},
		)
	}

	if err := s.kv.Put(ctx, entries...); err != nil {
		for _, e := range entries {
			metrics.SnapshotWrites.WithLabelValues(e.Key, "error").Inc()
		}
		s.log.Error("snapshot write failed", logger.Fields{"keys": len(entries), "err": err})
		return fmt.Errorf("persist snapshot: %w", err)
	}
	for _, e := range entries {
		metrics.SnapshotWrites.WithLabelValues(e.Key, "ok").Inc()
	}

	if p.birds != nil {
		s.birds = *p.birds
	}
	if p.logs != nil {
		s.logs = *p.logs
	}
	if p.records != nil {
		s.records = *p.records
	}
	if p.settings != nil {
		s.settings = *p.settings
	}
	return nil
}

func jsonEntry(key string, v any) (kv.Entry, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return kv.Entry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Entry{Key: key, Value: b}, nil
}

func (s *Store) findBird(id string) int {
	for i, b := range s.birds {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Birds, HealthLogs, Records y Settings exponen el store como repositorios de dominio.
func (s *Store) Birds() birds.Repository           { return birdRepo{s} }
func (s *Store) HealthLogs() healthlogs.Repository { return logRepo{s} }
func (s *Store) Records() records.Repository       { return recordRepo{s} }
func (s *Store) Settings() settings.Repository     { return settingsRepo{s} }
