package wishlist

import (
	"errors"
	"time"

	"github.com/everestbeauty/storefront-backend/internal/product"
)

var ErrProductUnknown = errors.New("product not found")

type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Add(userID, productID int) (Entry, error) {
	if _, err := s.products.GetActiveByID(productID); err != nil {
		if err == product.ErrNotFound {
			return Entry{}, ErrProductUnknown
		}
		return Entry{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Add(userID, productID, now)
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}

// ListByUser returns the saved entries with product details filled in.
// Entries whose product has been deactivated or removed stay in the list
// but carry no live details, so the client can show them as unavailable.
func (s *Service) ListByUser(userID int) ([]Entry, error) {
	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}
	prods, err := s.products.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]product.Product, len(prods))
	for _, p := range prods {
		byID[p.ID] = p
	}

	for i, e := range entries {
		p, ok := byID[e.ProductID]
		if !ok {
			continue
		}
		entries[i].ProductName = p.Name
		entries[i].ProductSlug = p.Slug
		entries[i].UnitPrice = p.CurrentPrice()
		entries[i].Image = p.Image
		entries[i].IsActive = p.IsActive
	}
	return entries, nil
}

func (s *Service) Count(userID int) (int, error) {
	return s.repo.Count(userID)
}
