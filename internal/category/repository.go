package category

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("category not found")

// Repository provides access to category and brand rows.
type Repository interface {
	ListCategories(limit int) ([]Category, error)
	GetCategoryBySlug(slug string) (Category, error)
	ListBrands(limit int) ([]Brand, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
	brands     []Brand
}

func NewInMemoryRepository(categories []Category, brands []Brand) *InMemoryRepository {
	return &InMemoryRepository{categories: categories, brands: brands}
}

func (r *InMemoryRepository) ListCategories(limit int) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, 0, len(r.categories))
	for _, c := range r.categories {
		if len(out) == limit {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *InMemoryRepository) GetCategoryBySlug(slug string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) ListBrands(limit int) ([]Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Brand, 0, len(r.brands))
	for _, b := range r.brands {
		if len(out) == limit {
			break
		}
		out = append(out, b)
	}
	return out, nil
}
