package review

import (
	"errors"
	"strings"
	"time"

	"github.com/everestbeauty/storefront-backend/internal/order"
	"github.com/everestbeauty/storefront-backend/internal/product"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrTitleTooShort  = errors.New("title must be at least 5 characters")
	ErrBodyTooShort   = errors.New("review must be at least 20 characters")
	ErrInvalidVote    = errors.New("invalid vote type")
	ErrForbidden      = errors.New("review belongs to another user")
	ErrProductUnknown = errors.New("product not found")
)

const (
	minTitleLen = 5
	minBodyLen  = 20
)

type Service struct {
	repo     Repository
	products product.ServiceInterface
	orders   order.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface, orders order.ServiceInterface) *Service {
	return &Service{repo: repo, products: products, orders: orders}
}

// ProductReviews is the listing payload for a product page. HasReviewed and
// CanReview describe the viewer; both are false for guests.
type ProductReviews struct {
	Reviews     []Review `json:"reviews"`
	Total       int      `json:"total"`
	Average     float64  `json:"averageRating"`
	HasReviewed bool     `json:"hasReviewed"`
	CanReview   bool     `json:"canReview"`
}

type Input struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

func (in *Input) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Comment = strings.TrimSpace(in.Comment)
	if in.Rating < 1 || in.Rating > 5 {
		return ErrInvalidRating
	}
	if len(in.Title) < minTitleLen {
		return ErrTitleTooShort
	}
	if len(in.Comment) < minBodyLen {
		return ErrBodyTooShort
	}
	return nil
}

func (s *Service) ListByProduct(productID, viewerID int) (ProductReviews, error) {
	reviews, err := s.repo.ListByProduct(productID)
	if err != nil {
		return ProductReviews{}, err
	}

	out := ProductReviews{Reviews: reviews, Total: len(reviews)}
	if len(reviews) > 0 {
		var sum int
		for _, rv := range reviews {
			sum += rv.Rating
		}
		out.Average = float64(sum) / float64(len(reviews))
	}

	if viewerID > 0 {
		if _, err := s.repo.GetByUserAndProduct(viewerID, productID); err == nil {
			out.HasReviewed = true
		} else if err != ErrNotFound {
			return ProductReviews{}, err
		}
		out.CanReview = !out.HasReviewed
	}
	return out, nil
}

// Add creates a review with the purchase flag frozen at submission time.
// A later purchase does not retroactively mark old reviews as verified.
func (s *Service) Add(userID, productID int, in Input) (Review, error) {
	if err := in.validate(); err != nil {
		return Review{}, err
	}

	p, err := s.products.GetActiveByID(productID)
	if err == product.ErrNotFound {
		return Review{}, ErrProductUnknown
	}
	if err != nil {
		return Review{}, err
	}

	if _, err := s.repo.GetByUserAndProduct(userID, productID); err == nil {
		return Review{}, ErrDuplicate
	} else if err != ErrNotFound {
		return Review{}, err
	}

	verified, err := s.orders.HasPurchased(userID, p.SKU)
	if err != nil {
		return Review{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Review{
		UserID:             userID,
		ProductID:          productID,
		Rating:             in.Rating,
		Title:              in.Title,
		Comment:            in.Comment,
		IsVerifiedPurchase: verified,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}

func (s *Service) Edit(userID, reviewID int, in Input) (Review, error) {
	if err := in.validate(); err != nil {
		return Review{}, err
	}
	rv, err := s.ownedReview(userID, reviewID)
	if err != nil {
		return Review{}, err
	}
	rv.Rating = in.Rating
	rv.Title = in.Title
	rv.Comment = in.Comment
	rv.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(rv)
}

func (s *Service) Delete(userID, reviewID int) error {
	if _, err := s.ownedReview(userID, reviewID); err != nil {
		return err
	}
	return s.repo.Delete(reviewID)
}

// Vote toggles the caller's vote on a review. Voting the same way twice
// removes the vote, voting the other way overwrites it.
func (s *Service) Vote(userID, reviewID int, voteType string) (VoteResult, error) {
	if voteType != VoteHelpful && voteType != VoteNotHelpful {
		return VoteResult{}, ErrInvalidVote
	}
	if _, err := s.repo.GetByID(reviewID); err != nil {
		return VoteResult{}, err
	}

	var action string
	existing, err := s.repo.GetVote(userID, reviewID)
	switch {
	case err == ErrVoteNotFound:
		if _, err := s.repo.CreateVote(Vote{UserID: userID, ReviewID: reviewID, VoteType: voteType}); err != nil {
			return VoteResult{}, err
		}
		action = "added"
	case err != nil:
		return VoteResult{}, err
	case existing.VoteType == voteType:
		if err := s.repo.DeleteVote(existing.ID); err != nil {
			return VoteResult{}, err
		}
		action = "removed"
	default:
		existing.VoteType = voteType
		if err := s.repo.UpdateVote(existing); err != nil {
			return VoteResult{}, err
		}
		action = "updated"
	}

	count, err := s.repo.RecountHelpful(reviewID)
	if err != nil {
		return VoteResult{}, err
	}
	return VoteResult{Action: action, HelpfulVotes: count}, nil
}

func (s *Service) ownedReview(userID, reviewID int) (Review, error) {
	rv, err := s.repo.GetByID(reviewID)
	if err != nil {
		return Review{}, err
	}
	if rv.UserID != userID {
		return Review{}, ErrForbidden
	}
	return rv, nil
}
