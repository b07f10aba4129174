package review

import (
	"errors"
	"sort"
	"sync"
)

var (
	ErrNotFound     = errors.New("review not found")
	ErrVoteNotFound = errors.New("vote not found")
	ErrDuplicate    = errors.New("user already reviewed this product")
)

// Repository persists reviews and their votes. One review per (user,
// product) and one vote per (user, review) are hard constraints, not
// application-side conventions.
type Repository interface {
	ListByProduct(productID int) ([]Review, error)
	GetByID(id int) (Review, error)
	GetByUserAndProduct(userID, productID int) (Review, error)
	Create(rv Review) (Review, error)
	Update(rv Review) (Review, error)
	Delete(id int) error

	GetVote(userID, reviewID int) (Vote, error)
	CreateVote(v Vote) (Vote, error)
	UpdateVote(v Vote) error
	DeleteVote(id int) error
	// RecountHelpful recomputes and stores the cached helpful counter,
	// returning the fresh value.
	RecountHelpful(reviewID int) (int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.Mutex
	nextID     int
	nextVoteID int
	reviews    []Review
	votes      []Vote
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, nextVoteID: 1}
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Review, 0)
	for _, rv := range r.reviews {
		if rv.ProductID == productID && rv.IsActive {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return Review{}, ErrNotFound
}

func (r *InMemoryRepository) GetByUserAndProduct(userID, productID int) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.UserID == userID && rv.ProductID == productID {
			return rv, nil
		}
	}
	return Review{}, ErrNotFound
}

func (r *InMemoryRepository) Create(rv Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.UserID == rv.UserID && existing.ProductID == rv.ProductID {
			return Review{}, ErrDuplicate
		}
	}
	rv.ID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, rv)
	return rv, nil
}

func (r *InMemoryRepository) Update(rv Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.reviews {
		if existing.ID == rv.ID {
			r.reviews[i] = rv
			return rv, nil
		}
	}
	return Review{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			kept := r.votes[:0]
			for _, v := range r.votes {
				if v.ReviewID != id {
					kept = append(kept, v)
				}
			}
			r.votes = kept
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) GetVote(userID, reviewID int) (Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.votes {
		if v.UserID == userID && v.ReviewID == reviewID {
			return v, nil
		}
	}
	return Vote{}, ErrVoteNotFound
}

func (r *InMemoryRepository) CreateVote(v Vote) (Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextVoteID
	r.nextVoteID++
	r.votes = append(r.votes, v)
	return v, nil
}

func (r *InMemoryRepository) UpdateVote(v Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.votes {
		if existing.ID == v.ID {
			r.votes[i] = v
			return nil
		}
	}
	return ErrVoteNotFound
}

func (r *InMemoryRepository) DeleteVote(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.votes {
		if v.ID == id {
			r.votes = append(r.votes[:i], r.votes[i+1:]...)
			return nil
		}
	}
	return ErrVoteNotFound
}

func (r *InMemoryRepository) RecountHelpful(reviewID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, v := range r.votes {
		if v.ReviewID == reviewID && v.VoteType == VoteHelpful {
			count++
		}
	}
	for i, rv := range r.reviews {
		if rv.ID == reviewID {
			r.reviews[i].HelpfulVotes = count
			return count, nil
		}
	}
	return 0, ErrNotFound
}
