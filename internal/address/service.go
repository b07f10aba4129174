package address

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingFields = errors.New("missing required address fields")
	ErrForbidden     = errors.New("address belongs to someone else")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(userID int) ([]Address, error) {
	return s.repo.ListByUser(userID)
}

func normalize(a Address) Address {
	a.FullName = strings.TrimSpace(a.FullName)
	a.Phone = strings.TrimSpace(a.Phone)
	a.AddressLine1 = strings.TrimSpace(a.AddressLine1)
	a.AddressLine2 = strings.TrimSpace(a.AddressLine2)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)
	if a.Country == "" {
		a.Country = "Nepal"
	}
	return a
}

func (s *Service) Create(userID int, a Address) (Address, error) {
	a = normalize(a)
	if a.missingRequired() {
		return Address{}, ErrMissingFields
	}
	a.UserID = userID
	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(a)
}

func (s *Service) Update(userID, addressID int, a Address) (Address, error) {
	existing, err := s.ownedAddress(userID, addressID)
	if err != nil {
		return Address{}, err
	}

	a = normalize(a)
	if a.missingRequired() {
		return Address{}, ErrMissingFields
	}
	a.ID = existing.ID
	a.UserID = userID
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(a)
}

func (s *Service) Delete(userID, addressID int) error {
	if _, err := s.ownedAddress(userID, addressID); err != nil {
		return err
	}
	return s.repo.Delete(addressID)
}

func (s *Service) ownedAddress(userID, addressID int) (Address, error) {
	a, err := s.repo.GetByID(addressID)
	if err != nil {
		return Address{}, err
	}
	if a.UserID != userID {
		// hide other people's addresses entirely
		return Address{}, ErrNotFound
	}
	return a, nil
}
