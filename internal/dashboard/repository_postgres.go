package dashboard

import (
	"database/sql"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Stats() (Stats, error) {
	var s Stats
	err := r.db.QueryRow(`SELECT
		(SELECT COUNT(*) FROM products),
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM reviews),
		(SELECT COUNT(*) FROM orders)`).
		Scan(&s.TotalProducts, &s.TotalUsers, &s.TotalReviews, &s.TotalOrders)
	if err != nil {
		return Stats{}, err
	}

	rows, err := r.db.Query(`SELECT user_id, first_name, last_name, email, created_at FROM users
		ORDER BY created_at DESC, user_id DESC LIMIT $1`, recentUserLimit)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	s.RecentUsers = make([]RecentUser, 0, recentUserLimit)
	for rows.Next() {
		var u RecentUser
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt); err != nil {
			return Stats{}, err
		}
		s.RecentUsers = append(s.RecentUsers, u)
	}
	return s, rows.Err()
}

func (r *PostgresRepository) SaveContact(m ContactMessage) (ContactMessage, error) {
	err := r.db.QueryRow(`INSERT INTO contact_messages (first_name, last_name, email, phone, subject, message, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING contact_id`,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Subject, m.Message, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return ContactMessage{}, err
	}
	return m, nil
}
