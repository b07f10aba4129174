package cart

import (
	"time"

	"github.com/everestbeauty/storefront-backend/internal/product"
)

// ServiceInterface is consumed by the order package at checkout.
type ServiceInterface interface {
	ResolveByUser(userID int) (Cart, error)
	Summary(c Cart) (Summary, error)
}

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

var _ ServiceInterface = (*Service)(nil)

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Resolve maps a caller to their one cart, creating it when absent. It never
// fails for business reasons: every identity has a cart on demand.
func (s *Service) Resolve(id Identity) (Cart, error) {
	if !id.Anonymous() {
		return s.repo.GetOrCreateByUser(id.UserID, now())
	}
	return s.repo.GetOrCreateBySession(id.SessionKey, now())
}

func (s *Service) ResolveByUser(userID int) (Cart, error) {
	return s.repo.GetOrCreateByUser(userID, now())
}

// Summary loads the cart's lines and prices them against the live catalog.
// Lines whose product has vanished or been deactivated are skipped rather
// than failing the whole cart.
func (s *Service) Summary(c Cart) (Summary, error) {
	raw, err := s.repo.Items(c.ID)
	if err != nil {
		return Summary{}, err
	}

	ids := make([]int, 0, len(raw))
	for _, it := range raw {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.ListByIDs(ids)
	if err != nil {
		return Summary{}, err
	}
	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	sum := Summary{Cart: c, Items: make([]Item, 0, len(raw))}
	for _, it := range raw {
		p, ok := byID[it.ProductID]
		if !ok || !p.IsActive {
			continue
		}
		it.ProductName = p.Name
		it.ProductSlug = p.Slug
		it.SKU = p.SKU
		it.Image = p.Image
		it.UnitPrice = p.CurrentPrice()
		it.Subtotal = float64(it.Quantity) * it.UnitPrice
		sum.Items = append(sum.Items, it)
		sum.TotalItems += it.Quantity
		sum.TotalAmount += it.Subtotal
	}
	return sum, nil
}

// Add puts qty of a product into the identity's cart, incrementing the
// existing line if there is one.
func (s *Service) Add(id Identity, productID, qty int) (Summary, error) {
	if qty < 1 {
		qty = 1
	}
	if _, err := s.products.GetActiveByID(productID); err != nil {
		return Summary{}, product.ErrNotFound
	}

	c, err := s.Resolve(id)
	if err != nil {
		return Summary{}, err
	}
	if err := s.repo.UpsertItem(c.ID, productID, qty, now()); err != nil {
		return Summary{}, err
	}
	return s.Summary(c)
}

// UpdateItem sets a line's quantity. Zero or less deletes the line; that is
// the normal remove path from the cart page, not an error.
func (s *Service) UpdateItem(id Identity, itemID, qty int) (Summary, error) {
	c, err := s.ownedCartForItem(id, itemID)
	if err != nil {
		return Summary{}, err
	}

	if qty <= 0 {
		err = s.repo.DeleteItem(itemID, now())
	} else {
		err = s.repo.SetItemQuantity(itemID, qty, now())
	}
	if err != nil {
		return Summary{}, err
	}
	return s.Summary(c)
}

func (s *Service) RemoveItem(id Identity, itemID int) (Summary, error) {
	c, err := s.ownedCartForItem(id, itemID)
	if err != nil {
		return Summary{}, err
	}
	if err := s.repo.DeleteItem(itemID, now()); err != nil {
		return Summary{}, err
	}
	return s.Summary(c)
}

func (s *Service) ownedCartForItem(id Identity, itemID int) (Cart, error) {
	it, err := s.repo.GetItem(itemID)
	if err != nil {
		return Cart{}, err
	}
	c, err := s.repo.GetCart(it.CartID)
	if err != nil {
		return Cart{}, err
	}
	if !id.owns(c) {
		return Cart{}, ErrForbidden
	}
	return c, nil
}
