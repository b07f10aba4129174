package product

import "strings"

const maxSuggestions = 8

// ServiceInterface lets other packages (cart, order, review) look products up
// without importing the concrete service.
type ServiceInterface interface {
	GetByID(id int) (Product, error)
	GetActiveByID(id int) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// GetActiveByID treats a hidden product the same as a missing one, which is
// what every buyer-facing path wants.
func (s *Service) GetActiveByID(id int) (Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if !p.IsActive {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) GetActiveBySlug(slug string) (Product, error) {
	p, err := s.repo.GetBySlug(slug)
	if err != nil {
		return Product{}, err
	}
	if !p.IsActive {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) ListFeatured(limit int) ([]Product, error) {
	return s.repo.ListFeatured(limit)
}

func (s *Service) ListBestsellers(limit int) ([]Product, error) {
	return s.repo.ListBestsellers(limit)
}

func (s *Service) ListNewArrivals(limit int) ([]Product, error) {
	return s.repo.ListNewArrivals(limit)
}

// Search walks every active product once and keeps the ones whose name
// contains the query, case-insensitively. The catalog is small enough that a
// plain linear scan is the whole search story; an empty query returns
// everything.
func (s *Service) Search(query string) ([]Product, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return all, nil
	}

	queryLower := strings.ToLower(query)
	matched := make([]Product, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), queryLower) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Suggest returns up to eight name/slug pairs for the search bar. Queries
// shorter than two characters produce nothing so the UI isn't flooded while
// the user is still typing.
func (s *Service) Suggest(query string) ([]Suggestion, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []Suggestion{}, nil
	}

	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(query)
	suggestions := make([]Suggestion, 0, maxSuggestions)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), queryLower) {
			suggestions = append(suggestions, Suggestion{Name: p.Name, Slug: p.Slug})
			if len(suggestions) >= maxSuggestions {
				break
			}
		}
	}
	return suggestions, nil
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
