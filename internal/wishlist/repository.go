package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrAlreadySaved = errors.New("product already in wishlist")
	ErrNotSaved     = errors.New("product not in wishlist")
)

// Repository provides access to wishlist operations.
type Repository interface {
	Add(userID, productID int, addedAt string) (Entry, error)
	Remove(userID, productID int) error
	ListByUser(userID int) ([]Entry, error)
	Count(userID int) (int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int
}

func NewInMemoryRepository(seed []Entry) *InMemoryRepository {
	r := &InMemoryRepository{entries: make([]Entry, 0, len(seed)), nextID: 1}
	for _, e := range seed {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
		r.entries = append(r.entries, e)
	}
	return r
}

func (r *InMemoryRepository) Add(userID, productID int, addedAt string) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			return Entry{}, ErrAlreadySaved
		}
	}
	e := Entry{ID: r.nextID, UserID: userID, ProductID: productID, AddedAt: addedAt}
	r.nextID++
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotSaved
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Count(userID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.entries {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}
