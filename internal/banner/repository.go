package banner

import "sync"

// Repository provides access to banner rows.
type Repository interface {
	ListActive(now string, limit int) ([]Banner, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	banners []Banner
}

func NewInMemoryRepository(seed []Banner) *InMemoryRepository {
	return &InMemoryRepository{banners: seed}
}

func (r *InMemoryRepository) ListActive(now string, limit int) ([]Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Banner, 0)
	for _, b := range r.banners {
		if !b.IsActive {
			continue
		}
		// RFC3339 strings compare correctly as text
		if b.StartsAt != "" && now < b.StartsAt {
			continue
		}
		if b.EndsAt != "" && now > b.EndsAt {
			continue
		}
		out = append(out, b)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
