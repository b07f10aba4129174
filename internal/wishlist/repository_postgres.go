package wishlist

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(userID, productID int, addedAt string) (Entry, error) {
	e := Entry{UserID: userID, ProductID: productID, AddedAt: addedAt}
	err := r.db.QueryRow(`INSERT INTO wishlist (user_id, product_id, added_at) VALUES ($1,$2,$3) RETURNING wishlist_id`,
		userID, productID, addedAt).Scan(&e.ID)
	if err != nil {
		if strings.Contains(err.Error(), "wishlist_user_product_key") {
			return Entry{}, ErrAlreadySaved
		}
		return Entry{}, err
	}
	return e, nil
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	res, err := r.db.Exec(`DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotSaved
	}
	return nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Entry, error) {
	rows, err := r.db.Query(`SELECT wishlist_id, user_id, product_id, added_at FROM wishlist
		WHERE user_id = $1 ORDER BY added_at DESC, wishlist_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProductID, &e.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Count(userID int) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM wishlist WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
