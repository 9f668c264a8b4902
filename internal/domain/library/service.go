package library

import (
	"context"
	"errors"
	"strings"

	"passaro-ok/internal/ports/capabilities"
)

var ErrNotFound = errors.New("article not found")

// Summary es lo que se muestra en la lista, visible para todos.
type Summary struct {
	ID       string
	Title    string
	Category string
	Preview  string
}

type Service struct {
	caps     capabilities.Resolver
	articles []Article
}

func NewService(caps capabilities.Resolver) *Service {
	return &Service{caps: caps, articles: catalog}
}

func (s *Service) List(ctx context.Context) []Summary {
	out := make([]Summary, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, Summary{ID: a.ID, Title: a.Title, Category: a.Category, Preview: a.Preview})
	}
	return out
}

// Get devuelve el artículo completo. El contenido es premium.
func (s *Service) Get(ctx context.Context, id string) (Article, error) {
	id = strings.TrimSpace(id)
	for _, a := range s.articles {
		if a.ID != id {
			continue
		}
		if err := capabilities.Require(ctx, s.caps, capabilities.CapabilityLibraryContent); err != nil {
			return Article{}, err
		}
		return a, nil
	}
	return Article{}, ErrNotFound
}
