package library

import (
	"context"
	"errors"
	"testing"

	"passaro-ok/internal/ports/capabilities"
)

type staticCaps bool

func (c staticCaps) Has(ctx context.Context, _ capabilities.Capability) (bool, error) {
	return bool(c), nil
}

func TestService_List_VisibleWithoutPremium(t *testing.T) {
	svc := NewService(staticCaps(false))

	items := svc.List(context.Background())
	if len(items) != 5 {
		t.Fatalf("expected 5 articles, got %d", len(items))
	}
	if items[0].Title != "Sinais de Alerta na Saúde" || items[4].Category != "Bem-estar" {
		t.Fatalf("unexpected order: %+v", items)
	}
	for _, a := range items {
		if a.Preview == "" {
			t.Fatalf("article %s without preview", a.ID)
		}
	}
}

func TestService_Get_ContentIsPremium(t *testing.T) {
	ctx := context.Background()

	_, err := NewService(staticCaps(false)).Get(ctx, "2")
	var locked *capabilities.LockedError
	if !errors.As(err, &locked) || locked.Capability != capabilities.CapabilityLibraryContent {
		t.Fatalf("expected library:content locked, got %v", err)
	}

	a, err := NewService(staticCaps(true)).Get(ctx, "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a.Title != "Nutrição Balanceada" || a.Content == "" {
		t.Fatalf("unexpected article: %+v", a)
	}
}

func TestService_Get_UnknownIsNotFoundEvenWhenLocked(t *testing.T) {
	if _, err := NewService(nil).Get(context.Background(), "99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
