package order

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. CreateFromCart must be atomic: the order, its
// item snapshots and the cart clearing either all commit or none do.
type Repository interface {
	CreateFromCart(ord Order, cartID int) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	UpdateStatus(id int, status Status, now string) error
	// HasPurchased reports whether the user owns a completed or delivered
	// order containing the given SKU.
	HasPurchased(userID int, sku string) (bool, error)
}

// InMemoryRepository is used for tests and local scenarios. clearCart stands
// in for the cart-clearing leg of the checkout transaction.
type InMemoryRepository struct {
	mu         sync.Mutex
	nextID     int
	nextItemID int
	orders     []Order
	clearCart  func(cartID int) error
}

func NewInMemoryRepository(clearCart func(cartID int) error) *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, nextItemID: 1, clearCart: clearCart}
}

func (r *InMemoryRepository) CreateFromCart(ord Order, cartID int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = r.nextID
	r.nextID++
	for i := range ord.Items {
		ord.Items[i].ID = r.nextItemID
		ord.Items[i].OrderID = ord.ID
		r.nextItemID++
	}
	r.orders = append(r.orders, ord)
	if r.clearCart != nil {
		if err := r.clearCart(cartID); err != nil {
			// roll back the append so no half-committed order remains
			r.orders = r.orders[:len(r.orders)-1]
			return Order{}, err
		}
	}
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status Status, now string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = now
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) HasPurchased(userID int, sku string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.UserID != userID || !o.Status.fulfilled() {
			continue
		}
		for _, it := range o.Items {
			if it.ProductSKU == sku {
				return true, nil
			}
		}
	}
	return false, nil
}
