package birds

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"testing"
	"time"

	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/ports/blob"
	"passaro-ok/internal/ports/capabilities"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	order []string
	byID  map[string]Bird

	updateErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Bird{}}
}

func (r *testRepo) Create(ctx context.Context, b Bird, limit int) error {
	if _, ok := r.byID[b.ID]; ok {
		return errors.New("repo: already exists")
	}
	if limit > 0 && len(r.byID) >= limit {
		return ErrLimitReached
	}
	r.byID[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *testRepo) Update(ctx context.Context, b Bird) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[b.ID]; !ok {
		return ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Bird, error) {
	b, ok := r.byID[id]
	if !ok {
		return Bird{}, ErrNotFound
	}
	return b, nil
}

func (r *testRepo) List(ctx context.Context) ([]Bird, error) {
	out := make([]Bird, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) { return len(r.byID), nil }

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type testBlobs struct {
	data map[string][]byte
	ct   map[string]string
}

func newTestBlobs() *testBlobs {
	return &testBlobs{data: map[string][]byte{}, ct: map[string]string{}}
}

func (b *testBlobs) Put(ctx context.Context, key string, r io.Reader, opts blob.PutOptions) (blob.Info, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return blob.Info{}, err
	}
	b.data[key] = raw
	b.ct[key] = opts.ContentType
	return blob.Info{Key: key, Size: int64(len(raw)), ContentType: opts.ContentType}, nil
}

func (b *testBlobs) Get(ctx context.Context, key string) (blob.Info, io.ReadCloser, error) {
	raw, ok := b.data[key]
	if !ok {
		return blob.Info{}, nil, blob.ErrNotFound
	}
	return blob.Info{Key: key, ContentType: b.ct[key]}, io.NopCloser(bytes.NewReader(raw)), nil
}

func (b *testBlobs) Delete(ctx context.Context, key string) (bool, error) {
	_, ok := b.data[key]
	delete(b.data, key)
	return ok, nil
}

func (b *testBlobs) Driver() blob.Driver { return blob.DriverMemory }

type staticCaps bool

func (c staticCaps) Has(ctx context.Context, _ capabilities.Capability) (bool, error) {
	return bool(c), nil
}

func newTestService(premium bool) (*Service, *testRepo, *testBlobs) {
	repo := newTestRepo()
	blobs := newTestBlobs()
	svc := NewService(repo, blobs, staticCaps(premium), nil)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo, blobs
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_StartsGreenAndCanonicalizesSpecies(t *testing.T) {
	svc, _, _ := newTestService(false)

	b, err := svc.Create(context.Background(), CreateInput{Name: "  Piu ", Species: "canario", Age: "2 anos"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID == "" {
		t.Fatalf("expected generated id")
	}
	if b.Name != "Piu" || b.Species != "Canário" {
		t.Fatalf("unexpected name/species: %q %q", b.Name, b.Species)
	}
	if b.Status != health.StatusGreen {
		t.Fatalf("expected GREEN on creation, got %s", b.Status)
	}
	if !b.LastUpdate.Equal(b.CreatedAt) {
		t.Fatalf("expected last update = created at")
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	svc, _, _ := newTestService(true)

	if _, err := svc.Create(context.Background(), CreateInput{Name: " ", Species: "Curió"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

func TestService_BlankSpeciesDefaultsToOutro(t *testing.T) {
	svc, _, _ := newTestService(true)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateInput{Name: "Piu", Species: "   "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Species != DefaultSpecies {
		t.Fatalf("expected species Outro, got %q", b.Species)
	}
	if b.Species != "Outro" {
		t.Fatalf("expected species Outro, got %q", b.Species)
	}

	custom, _ := svc.Create(ctx, CreateInput{Name: "Bico", Species: "  Sabiá  laranjeira "})
	if custom.Species != "Sabiá laranjeira" {
		t.Fatalf("expected free-text species kept, got %q", custom.Species)
	}

	empty := ""
	updated, err := svc.Update(ctx, custom.ID, UpdateInput{Species: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Species != "Outro" {
		t.Fatalf("expected blank species on update to become Outro, got %q", updated.Species)
	}
}

func TestService_Create_SecondBirdLockedWithoutPremium(t *testing.T) {
	svc, repo, _ := newTestService(false)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "Piu", Species: "Canário"}); err != nil {
		t.Fatalf("first bird: %v", err)
	}

	_, err := svc.Create(ctx, CreateInput{Name: "Loro", Species: "Papagaio"})
	if !errors.Is(err, capabilities.ErrLocked) {
		t.Fatalf("expected locked error, got %v", err)
	}
	var locked *capabilities.LockedError
	if !errors.As(err, &locked) || locked.Capability != capabilities.CapabilityMultipleBirds {
		t.Fatalf("expected birds:multiple capability, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected 1 bird stored, got %d", n)
	}
}

func TestService_Create_MultipleBirdsWithPremium(t *testing.T) {
	svc, _, _ := newTestService(true)
	ctx := context.Background()

	for _, name := range []string{"Piu", "Loro", "Kiwi"} {
		if _, err := svc.Create(ctx, CreateInput{Name: name, Species: "Outro"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	items, _ := svc.List(ctx)
	if len(items) != 3 || items[0].Name != "Piu" || items[2].Name != "Kiwi" {
		t.Fatalf("expected creation order, got %+v", items)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	svc, _, _ := newTestService(false)
	ctx := context.Background()

	d := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	b, _ := svc.Create(ctx, CreateInput{Name: "Piu", Species: "Canário", AcquiredOn: &d})

	name := "Piu Piu"
	updated, err := svc.Update(ctx, b.ID, UpdateInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Piu Piu" || updated.AcquiredOn == nil {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	cleared, err := svc.Update(ctx, b.ID, UpdateInput{AcquiredOn: OptionalDate{Present: true}})
	if err != nil {
		t.Fatalf("clear date: %v", err)
	}
	if cleared.AcquiredOn != nil {
		t.Fatalf("expected acquired date cleared")
	}

	if _, err := svc.Update(ctx, "missing", UpdateInput{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_PhotoLifecycle(t *testing.T) {
	svc, _, blobs := newTestService(false)
	ctx := context.Background()

	png := []byte{0x89, 'P', 'N', 'G'}
	p, err := ParseDataURL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
	if err != nil {
		t.Fatalf("parse data url: %v", err)
	}

	b, err := svc.Create(ctx, CreateInput{Name: "Piu", Species: "Canário", Photo: &p})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !b.HasPhoto() {
		t.Fatalf("expected photo key")
	}

	rc, ct, err := svc.Photo(ctx, b.ID)
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	got, _ := io.ReadAll(rc)
	_ = rc.Close()
	if ct != "image/png" || !bytes.Equal(got, png) {
		t.Fatalf("unexpected photo %q %v", ct, got)
	}

	if err := svc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(blobs.data) != 0 {
		t.Fatalf("expected photo blob removed on delete")
	}
	if _, err := svc.GetByID(ctx, b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected bird gone, got %v", err)
	}
}

func TestService_Create_LimitReachedInRepoIsLocked(t *testing.T) {
	svc, repo, blobs := newTestService(false)
	ctx := context.Background()

	// Otro pájaro entró entre el conteo del service y el alta.
	raced := &racingRepo{testRepo: repo}
	svc.repo = raced

	png := Photo{ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	_, err := svc.Create(ctx, CreateInput{Name: "Piu", Species: "Canário", Photo: &png})
	var locked *capabilities.LockedError
	if !errors.As(err, &locked) || locked.Capability != capabilities.CapabilityMultipleBirds {
		t.Fatalf("expected birds:multiple locked, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected only the raced bird stored, got %d", n)
	}
	if len(blobs.data) != 0 {
		t.Fatalf("expected photo of rejected bird removed, got %d blobs", len(blobs.data))
	}
}

// racingRepo inserta un pájaro justo antes del primer Create.
type racingRepo struct {
	*testRepo
	done bool
}

func (r *racingRepo) Create(ctx context.Context, b Bird, limit int) error {
	if !r.done {
		r.done = true
		_ = r.testRepo.Create(ctx, Bird{ID: "other", Name: "Loro", Species: "Papagaio"}, 0)
	}
	return r.testRepo.Create(ctx, b, limit)
}

func TestService_Update_FailedSaveDropsNewPhoto(t *testing.T) {
	svc, repo, blobs := newTestService(false)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateInput{Name: "Piu", Species: "Canário"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	repo.updateErr = ErrNotFound
	png := Photo{ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	if _, err := svc.Update(ctx, b.ID, UpdateInput{Photo: &png}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound from failed update, got %v", err)
	}
	if len(blobs.data) != 0 {
		t.Fatalf("expected orphan photo removed, got %d blobs", len(blobs.data))
	}
}

func TestParseDataURL_Rejects(t *testing.T) {
	bad := []string{
		"",
		"image/png;base64,AAAA",
		"data:text/plain;base64,AAAA",
		"data:image/png,AAAA",
		"data:image/png;base64,@@@",
	}
	for _, s := range bad {
		if _, err := ParseDataURL(s); !errors.Is(err, ErrInvalidPhoto) {
			t.Fatalf("expected ErrInvalidPhoto for %q, got %v", s, err)
		}
	}
}

func TestShareText(t *testing.T) {
	got := ShareText(Bird{Name: "Piu", Status: health.StatusYellow})
	want := "Status do Piu: Atenção. Observe de perto. Algo não está 100%. - via App Pássaro OK 🐦"
	if got != want {
		t.Fatalf("unexpected share text\n got: %s\nwant: %s", got, want)
	}
}

func TestCanonicalSpecies(t *testing.T) {
	cases := map[string]string{
		"CURIO":            "Curió",
		" calopsita ":      "Calopsita",
		"Mandarim  Chinês": "Mandarim Chinês",
		"agapornis":        "Agapornis",
	}
	for in, want := range cases {
		if got := CanonicalSpecies(in); got != want {
			t.Fatalf("CanonicalSpecies(%q) = %q, want %q", in, got, want)
		}
	}
}
