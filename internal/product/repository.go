package product

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("product not found")

// Repository provides access to the catalog. List-style methods return
// active products only; GetByID returns inactive rows too so callers can
// distinguish "gone" from "hidden".
type Repository interface {
	List() ([]Product, error)
	ListByIDs(ids []int) ([]Product, error)
	GetByID(id int) (Product, error)
	GetBySlug(slug string) (Product, error)
	ListFeatured(limit int) ([]Product, error)
	ListBestsellers(limit int) ([]Product, error)
	ListNewArrivals(limit int) ([]Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	Delete(id int) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	nextID   int
	products []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products = append(r.products, p)
	}
	return r
}

func (r *InMemoryRepository) List() ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByIDs(ids []int) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range r.products {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) listFlagged(limit int, flagged func(Product) bool) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, limit)
	for _, p := range r.products {
		if p.IsActive && flagged(p) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListFeatured(limit int) ([]Product, error) {
	return r.listFlagged(limit, func(p Product) bool { return p.IsFeatured })
}

func (r *InMemoryRepository) ListBestsellers(limit int) ([]Product, error) {
	return r.listFlagged(limit, func(p Product) bool { return p.IsBestseller })
}

func (r *InMemoryRepository) ListNewArrivals(limit int) ([]Product, error) {
	return r.listFlagged(limit, func(p Product) bool { return p.IsNewArrival })
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == id {
			p.ID = id
			r.products[i] = p
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
