package banner

import "time"

const defaultLimit = 3

// Service provides the hero banner feed.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(limit int) ([]Banner, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.ListActive(now, limit)
}
