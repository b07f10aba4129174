package dashboard

import "sync"

const recentUserLimit = 5

// Repository provides the aggregate queries behind the admin overview and
// storage for contact form submissions.
type Repository interface {
	Stats() (Stats, error)
	SaveContact(m ContactMessage) (ContactMessage, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	stats    Stats
	messages []ContactMessage
	nextID   int
}

func NewInMemoryRepository(stats Stats) *InMemoryRepository {
	return &InMemoryRepository{stats: stats, nextID: 1}
}

func (r *InMemoryRepository) Stats() (Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats, nil
}

func (r *InMemoryRepository) SaveContact(m ContactMessage) (ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	r.messages = append(r.messages, m)
	return m, nil
}

// Messages returns stored submissions, for assertions in tests.
func (r *InMemoryRepository) Messages() []ContactMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ContactMessage, len(r.messages))
	copy(out, r.messages)
	return out
}
