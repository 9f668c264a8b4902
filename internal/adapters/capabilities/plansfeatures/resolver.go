package plansfeatures

import (
	"context"
	"sync"
	"time"

	"passaro-ok/internal/ports/capabilities"
)

// DefaultTTL es cuánto reutilizamos la última respuesta de plans-features.
const DefaultTTL = 30 * time.Second

// Resolver implementa capabilities.Resolver contra plans-features con un cache corto.
type Resolver struct {
	client *Client
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	cached    map[string]bool
	fetchedAt time.Time
}

func NewResolver(client *Client, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{client: client, ttl: ttl, now: time.Now}
}

func (r *Resolver) Has(ctx context.Context, c capabilities.Capability) (bool, error) {
	if r == nil || !r.client.IsConfigured() {
		return false, ErrPlansNotConfigured
	}
	caps, err := r.resolve(ctx)
	if err != nil {
		return false, err
	}
	return caps[string(c)], nil
}

func (r *Resolver) resolve(ctx context.Context) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.now().Sub(r.fetchedAt) < r.ttl {
		return r.cached, nil
	}
	resp, err := r.client.GetCapabilities(ctx)
	if err != nil {
		return nil, err
	}
	r.cached = resp.Capabilities
	r.fetchedAt = r.now()
	return r.cached, nil
}
