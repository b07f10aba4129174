package cart

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanCart(row interface{ Scan(...interface{}) error }) (Cart, error) {
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.SessionKey, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return Cart{}, ErrCartNotFound
	}
	if err != nil {
		return Cart{}, err
	}
	return c, nil
}

// GetOrCreateByUser relies on the partial unique index on carts.user_id so
// two simultaneous first requests cannot race into two carts.
func (r *PostgresRepository) GetOrCreateByUser(userID int, now string) (Cart, error) {
	return scanCart(r.db.QueryRow(`
		INSERT INTO carts (user_id, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (user_id) WHERE user_id IS NOT NULL
		DO UPDATE SET updated_at = carts.updated_at
		RETURNING cart_id, user_id, session_key, created_at, updated_at`,
		userID, now))
}

func (r *PostgresRepository) GetOrCreateBySession(sessionKey string, now string) (Cart, error) {
	return scanCart(r.db.QueryRow(`
		INSERT INTO carts (session_key, created_at, updated_at)
		VALUES ($1, $2, $2)
		ON CONFLICT (session_key) WHERE session_key IS NOT NULL
		DO UPDATE SET updated_at = carts.updated_at
		RETURNING cart_id, user_id, session_key, created_at, updated_at`,
		sessionKey, now))
}

func (r *PostgresRepository) GetCart(cartID int) (Cart, error) {
	return scanCart(r.db.QueryRow(`SELECT cart_id, user_id, session_key, created_at, updated_at FROM carts WHERE cart_id = $1`, cartID))
}

func (r *PostgresRepository) Items(cartID int) ([]Item, error) {
	rows, err := r.db.Query(`SELECT item_id, cart_id, product_id, quantity FROM cart_items WHERE cart_id = $1 ORDER BY item_id`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) UpsertItem(cartID, productID, qty int, now string) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		cartID, productID, qty)
	if err != nil {
		return err
	}
	return r.touch(cartID, now)
}

func (r *PostgresRepository) GetItem(itemID int) (Item, error) {
	var it Item
	err := r.db.QueryRow(`SELECT item_id, cart_id, product_id, quantity FROM cart_items WHERE item_id = $1`, itemID).
		Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity)
	if err == sql.ErrNoRows {
		return Item{}, ErrItemNotFound
	}
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) SetItemQuantity(itemID, qty int, now string) error {
	var cartID int
	err := r.db.QueryRow(`UPDATE cart_items SET quantity = $1 WHERE item_id = $2 RETURNING cart_id`, qty, itemID).Scan(&cartID)
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	return r.touch(cartID, now)
}

func (r *PostgresRepository) DeleteItem(itemID int, now string) error {
	var cartID int
	err := r.db.QueryRow(`DELETE FROM cart_items WHERE item_id = $1 RETURNING cart_id`, itemID).Scan(&cartID)
	if err == sql.ErrNoRows {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	return r.touch(cartID, now)
}

func (r *PostgresRepository) ClearItems(cartID int, now string) error {
	if _, err := r.db.Exec(`DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return err
	}
	return r.touch(cartID, now)
}

func (r *PostgresRepository) touch(cartID int, now string) error {
	if now == "" {
		return nil
	}
	_, err := r.db.Exec(`UPDATE carts SET updated_at = $1 WHERE cart_id = $2`, now, cartID)
	return err
}
