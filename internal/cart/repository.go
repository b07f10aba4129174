package cart

import (
	"errors"
	"sync"
)

var (
	ErrItemNotFound = errors.New("cart item not found")
	ErrCartNotFound = errors.New("cart not found")
	ErrForbidden    = errors.New("cart item belongs to someone else")
)

// Repository persists carts and their raw line items. Product enrichment and
// totals live in the service; the repository only knows ids and quantities.
type Repository interface {
	GetOrCreateByUser(userID int, now string) (Cart, error)
	GetOrCreateBySession(sessionKey string, now string) (Cart, error)
	GetCart(cartID int) (Cart, error)
	Items(cartID int) ([]Item, error)
	// UpsertItem adds qty to an existing line or creates one. A single line
	// per (cart, product) is an invariant, not a best effort.
	UpsertItem(cartID, productID, qty int, now string) error
	GetItem(itemID int) (Item, error)
	SetItemQuantity(itemID, qty int, now string) error
	DeleteItem(itemID int, now string) error
	ClearItems(cartID int, now string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.Mutex
	nextCartID int
	nextItemID int
	carts      []Cart
	items      []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextCartID: 1, nextItemID: 1}
}

func (r *InMemoryRepository) GetOrCreateByUser(userID int, now string) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.carts {
		if c.UserID != nil && *c.UserID == userID {
			return c, nil
		}
	}
	c := Cart{ID: r.nextCartID, UserID: &userID, CreatedAt: now, UpdatedAt: now}
	r.nextCartID++
	r.carts = append(r.carts, c)
	return c, nil
}

func (r *InMemoryRepository) GetOrCreateBySession(sessionKey string, now string) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.carts {
		if c.SessionKey != nil && *c.SessionKey == sessionKey {
			return c, nil
		}
	}
	c := Cart{ID: r.nextCartID, SessionKey: &sessionKey, CreatedAt: now, UpdatedAt: now}
	r.nextCartID++
	r.carts = append(r.carts, c)
	return c, nil
}

func (r *InMemoryRepository) GetCart(cartID int) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.carts {
		if c.ID == cartID {
			return c, nil
		}
	}
	return Cart{}, ErrCartNotFound
}

func (r *InMemoryRepository) Items(cartID int) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Item, 0)
	for _, it := range r.items {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpsertItem(cartID, productID, qty int, now string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.CartID == cartID && it.ProductID == productID {
			r.items[i].Quantity += qty
			r.touch(cartID, now)
			return nil
		}
	}
	r.items = append(r.items, Item{ID: r.nextItemID, CartID: cartID, ProductID: productID, Quantity: qty})
	r.nextItemID++
	r.touch(cartID, now)
	return nil
}

func (r *InMemoryRepository) GetItem(itemID int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (r *InMemoryRepository) SetItemQuantity(itemID, qty int, now string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == itemID {
			r.items[i].Quantity = qty
			r.touch(it.CartID, now)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) DeleteItem(itemID int, now string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.touch(it.CartID, now)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) ClearItems(cartID int, now string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if it.CartID != cartID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	r.touch(cartID, now)
	return nil
}

// touch is called with the lock held.
func (r *InMemoryRepository) touch(cartID int, now string) {
	if now == "" {
		return
	}
	for i, c := range r.carts {
		if c.ID == cartID {
			r.carts[i].UpdatedAt = now
			return
		}
	}
}
