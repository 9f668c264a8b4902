package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	blobmem "passaro-ok/internal/adapters/blob/memory"
	"passaro-ok/internal/adapters/storage/memory"
	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/platform/config"
	"passaro-ok/internal/ports/blob"
	"passaro-ok/internal/ports/capabilities"
)

// slowBlobs demora cada Put y lleva la cuenta de blobs vivos.
type slowBlobs struct {
	blob.Store

	mu   sync.Mutex
	live map[string]bool
}

func (s *slowBlobs) Put(ctx context.Context, key string, r io.Reader, opts blob.PutOptions) (blob.Info, error) {
	time.Sleep(5 * time.Millisecond)
	info, err := s.Store.Put(ctx, key, r, opts)
	if err == nil {
		s.mu.Lock()
		s.live[key] = true
		s.mu.Unlock()
	}
	return info, err
}

func (s *slowBlobs) Delete(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	delete(s.live, key)
	s.mu.Unlock()
	return s.Store.Delete(ctx, key)
}

func TestNew_SQLitePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Storage.SQLitePath = filepath.Join(dir, "passaro.db")
	cfg.Photos.Root = filepath.Join(dir, "photos")

	a, err := New(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b, err := a.Birds.Create(ctx, birds.CreateInput{Name: "Piu", Species: "Canário"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	answers, _ := health.ParseAnswers(map[string]string{
		"appetite": "refused", "activity": "normal", "droppings": "normal", "singing": "normal",
	})
	if _, err := a.Checks.Record(ctx, b.ID, healthlogs.RecordInput{Answers: answers}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	a, err = New(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer a.Close()

	got, err := a.Birds.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get after restart: %v", err)
	}
	if got.Status != health.StatusRed {
		t.Fatalf("expected RED after restart, got %s", got.Status)
	}
}

func TestOpen_UnknownDrivers(t *testing.T) {
	if _, err := OpenKV(config.StorageConfig{Driver: "redis"}); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
	if _, err := OpenPhotos(context.Background(), config.PhotosConfig{Driver: "ftp"}); err == nil {
		t.Fatalf("expected error for unknown photos driver")
	}
}

func TestOpenPlans_OptionalWhenUnset(t *testing.T) {
	r, err := openPlans(config.PlansConfig{})
	if err != nil || r != nil {
		t.Fatalf("expected nil resolver without config, got %v %v", r, err)
	}
}

func TestBirds_FreeTierLimitHoldsUnderConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	photos := &slowBlobs{Store: blobmem.New(), live: map[string]bool{}}

	a, err := NewWith(ctx, Deps{KV: memory.NewKV(), Photos: photos}, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer a.Close()

	const n = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		locked  int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := birds.Photo{ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
			_, err := a.Birds.Create(ctx, birds.CreateInput{Name: "Piu", Species: "Canário", Photo: &p})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, capabilities.ErrLocked):
				locked++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	items, _ := a.Birds.List(ctx)
	if created != 1 || locked != n-1 || len(items) != 1 {
		t.Fatalf("free tier limit bypassed: created=%d locked=%d stored=%d", created, locked, len(items))
	}
	if len(photos.live) != 1 {
		t.Fatalf("expected only the stored bird's photo to remain, got %d", len(photos.live))
	}
}
