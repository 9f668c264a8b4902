package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"passaro-ok/internal/adapters/storage/memory"
	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/domain/records"
	"passaro-ok/internal/ports/kv"
)

// failingKV delega en un kv real hasta que fail=true.
type failingKV struct {
	kv.Store
	fail bool
}

func (f *failingKV) Put(ctx context.Context, entries ...kv.Entry) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Store.Put(ctx, entries...)
}

var t0 = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	acq := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	for _, b := range []birds.Bird{
		{ID: "b1", Name: "Piu", Species: "Canário", Age: "1 ano", AcquiredOn: &acq, Status: health.StatusGreen, LastUpdate: t0, CreatedAt: t0},
		{ID: "b2", Name: "Loro", Species: "Papagaio", Status: health.StatusGreen, LastUpdate: t0, CreatedAt: t0},
	} {
		if err := s.Birds().Create(ctx, b, 0); err != nil {
			t.Fatalf("create %s: %v", b.ID, err)
		}
	}

	logs := []healthlogs.HealthLog{
		{ID: "l1", BirdID: "b1", Date: t0.Add(time.Hour), Appetite: "Baixo", Activity: "Normal", Droppings: "Normal", Singing: "Normal", ResultStatus: health.StatusYellow},
		{ID: "l2", BirdID: "b2", Date: t0.Add(2 * time.Hour), Appetite: "Recusou", Activity: "Normal", Droppings: "Normal", Singing: "Normal", ResultStatus: health.StatusRed, Notes: "vet"},
		{ID: "l3", BirdID: "b1", Date: t0.Add(3 * time.Hour), Appetite: "Normal", Activity: "Ativo", Droppings: "Normal", Singing: "Normal", ResultStatus: health.StatusGreen},
	}
	for _, l := range logs {
		if err := s.HealthLogs().Append(ctx, l); err != nil {
			t.Fatalf("append %s: %v", l.ID, err)
		}
	}

	w := 23.5
	molting := true
	for _, a := range []records.AdvancedRecord{
		{ID: "r1", BirdID: "b1", Date: t0.Add(4 * time.Hour), WeightGrams: &w},
		{ID: "r2", BirdID: "b2", Date: t0.Add(5 * time.Hour), IsMolting: &molting, Event: "troca de penas"},
	} {
		if err := s.Records().Append(ctx, a); err != nil {
			t.Fatalf("record %s: %v", a.ID, err)
		}
	}
}

func TestStore_ReloadReturnsSameState(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKV()

	s, err := Open(ctx, backend, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	seed(t, s)
	st, _ := s.Settings().Get(ctx)
	st.Premium = true
	st.Reminder.Enabled = true
	st.Reminder.Time = "19:45"
	if err := s.Settings().Save(ctx, st); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	reloaded, err := Open(ctx, backend, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	if !reflect.DeepEqual(s.birds, reloaded.birds) {
		t.Fatalf("birds differ after reload:\n%+v\n%+v", s.birds, reloaded.birds)
	}
	if !reflect.DeepEqual(s.logs, reloaded.logs) {
		t.Fatalf("logs differ after reload")
	}
	if !reflect.DeepEqual(s.records, reloaded.records) {
		t.Fatalf("records differ after reload")
	}
	if s.settings != reloaded.settings {
		t.Fatalf("settings differ: %+v vs %+v", s.settings, reloaded.settings)
	}
}

func TestStore_PersistedFormat(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKV()
	s, _ := Open(ctx, backend, nil)
	seed(t, s)

	raw, _ := backend.Load(ctx)

	var logs []map[string]any
	if err := json.Unmarshal(raw[KeyHealthLogs], &logs); err != nil {
		t.Fatalf("decode logs: %v", err)
	}
	if logs[0]["birdId"] != "b1" || logs[0]["resultStatus"] != "YELLOW" {
		t.Fatalf("unexpected log shape: %v", logs[0])
	}

	var recs []map[string]any
	_ = json.Unmarshal(raw[KeyAdvancedRecords], &recs)
	if recs[0]["weight"] != "23.5" {
		t.Fatalf("expected weight stored as text, got %v", recs[0]["weight"])
	}

	if _, ok := raw[KeyPremium]; ok {
		t.Fatalf("settings keys should not be written until settings change")
	}
}

func TestStore_BirdStatusFollowsLatestLog(t *testing.T) {
	ctx := context.Background()
	s, _ := Open(ctx, memory.NewKV(), nil)
	seed(t, s)

	b1, _ := s.Birds().GetByID(ctx, "b1")
	if b1.Status != health.StatusGreen || !b1.LastUpdate.Equal(t0.Add(3*time.Hour)) {
		t.Fatalf("b1 should reflect l3, got %s %v", b1.Status, b1.LastUpdate)
	}

	// Un update de perfil no pisa el status.
	b1.Name = "Piu II"
	b1.Status = health.StatusRed
	if err := s.Birds().Update(ctx, b1); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := s.Birds().GetByID(ctx, "b1")
	if got.Name != "Piu II" || got.Status != health.StatusGreen {
		t.Fatalf("unexpected bird after update: %+v", got)
	}

	if err := s.HealthLogs().Append(ctx, healthlogs.HealthLog{ID: "x", BirdID: "ghost", Date: t0}); !errors.Is(err, birds.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown bird, got %v", err)
	}
}

func TestStore_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewKV()
	s, _ := Open(ctx, backend, nil)
	seed(t, s)

	if err := s.Birds().Delete(ctx, "b1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reloaded, _ := Open(ctx, backend, nil)
	for _, l := range reloaded.logs {
		if l.BirdID == "b1" {
			t.Fatalf("orphan log %s left behind", l.ID)
		}
	}
	for _, a := range reloaded.records {
		if a.BirdID == "b1" {
			t.Fatalf("orphan record %s left behind", a.ID)
		}
	}
	if len(reloaded.birds) != 1 || len(reloaded.logs) != 1 || len(reloaded.records) != 1 {
		t.Fatalf("expected only b2 data, got %d/%d/%d", len(reloaded.birds), len(reloaded.logs), len(reloaded.records))
	}

	if err := s.Birds().Delete(ctx, "b1"); !errors.Is(err, birds.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestStore_FailedWriteKeepsMemory(t *testing.T) {
	ctx := context.Background()
	backend := &failingKV{Store: memory.NewKV()}
	s, _ := Open(ctx, backend, nil)
	seed(t, s)

	backend.fail = true
	if err := s.Birds().Delete(ctx, "b1"); err == nil {
		t.Fatalf("expected write error")
	}
	if n, _ := s.Birds().Count(ctx); n != 2 {
		t.Fatalf("memory changed despite failed write: %d birds", n)
	}
	logs, _ := s.HealthLogs().ListByBird(ctx, "b1")
	if len(logs) != 2 || logs[0].ID != "l3" {
		t.Fatalf("expected b1 logs intact newest first, got %+v", logs)
	}
}

func TestBirdRepo_CreateRespectsLimitUnderLock(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, memory.NewKV(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Birds().Create(ctx, birds.Bird{ID: "b1", Name: "Piu", Species: "Canário"}, 1); err != nil {
		t.Fatalf("first bird: %v", err)
	}
	if err := s.Birds().Create(ctx, birds.Bird{ID: "b2", Name: "Loro", Species: "Papagaio"}, 1); !errors.Is(err, birds.ErrLimitReached) {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}
	if err := s.Birds().Create(ctx, birds.Bird{ID: "b2", Name: "Loro", Species: "Papagaio"}, 0); err != nil {
		t.Fatalf("unlimited create: %v", err)
	}
	if n, _ := s.Birds().Count(ctx); n != 2 {
		t.Fatalf("expected 2 birds, got %d", n)
	}
}
