package dashboard

import (
	"errors"
	"strings"
	"time"

	"github.com/everestbeauty/storefront-backend/internal/cart"
)

var (
	ErrMissingFields = errors.New("first name, last name, email, subject and message are required")
	ErrInvalidEmail  = errors.New("invalid email address")
)

type cartResolver interface {
	Resolve(id cart.Identity) (cart.Cart, error)
	Summary(c cart.Cart) (cart.Summary, error)
}

type wishlistCounter interface {
	Count(userID int) (int, error)
}

type Service struct {
	repo      Repository
	carts     cartResolver
	wishlists wishlistCounter
}

func NewService(repo Repository, carts cartResolver, wishlists wishlistCounter) *Service {
	return &Service{repo: repo, carts: carts, wishlists: wishlists}
}

func (s *Service) Stats() (Stats, error) {
	return s.repo.Stats()
}

// NavCounts returns the header badge numbers. Guests get their cart count
// from the session cart and always a zero wishlist.
func (s *Service) NavCounts(id cart.Identity) (NavCounts, error) {
	var out NavCounts

	if !id.Anonymous() || id.SessionKey != "" {
		c, err := s.carts.Resolve(id)
		if err != nil {
			return NavCounts{}, err
		}
		summary, err := s.carts.Summary(c)
		if err != nil {
			return NavCounts{}, err
		}
		out.CartItems = summary.TotalItems
	}

	if !id.Anonymous() {
		n, err := s.wishlists.Count(id.UserID)
		if err != nil {
			return NavCounts{}, err
		}
		out.WishlistItems = n
	}
	return out, nil
}

func (s *Service) SubmitContact(m ContactMessage) (ContactMessage, error) {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)

	if m.FirstName == "" || m.LastName == "" || m.Email == "" || m.Subject == "" || m.Message == "" {
		return ContactMessage{}, ErrMissingFields
	}
	if !strings.Contains(m.Email, "@") || !strings.Contains(m.Email, ".") {
		return ContactMessage{}, ErrInvalidEmail
	}

	m.ID = 0
	m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.SaveContact(m)
}
