package category

// Service provides read access to the shop navigation data.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) ListCategories(limit int) ([]Category, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.repo.ListCategories(limit)
}

func (s *Service) GetCategoryBySlug(slug string) (Category, error) {
	return s.repo.GetCategoryBySlug(slug)
}

func (s *Service) ListBrands(limit int) ([]Brand, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.repo.ListBrands(limit)
}
