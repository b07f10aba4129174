package order

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `order_id, order_number, user_id, status, total_amount, shipping_address, shipping_phone, shipping_email, payment_method, payment_status, created_at, updated_at`

// CreateFromCart runs the whole checkout write set in one transaction so a
// failure at any step leaves neither a partial order nor an emptied cart.
func (r *PostgresRepository) CreateFromCart(ord Order, cartID int) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`INSERT INTO orders (order_number, user_id, status, total_amount, shipping_address, shipping_phone, shipping_email, payment_method, payment_status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING order_id`,
		ord.OrderNumber, ord.UserID, ord.Status, ord.TotalAmount, ord.ShippingAddress,
		ord.ShippingPhone, ord.ShippingEmail, ord.PaymentMethod, ord.PaymentStatus,
		ord.CreatedAt, ord.UpdatedAt).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}

	for i := range ord.Items {
		it := &ord.Items[i]
		it.OrderID = ord.ID
		err = tx.QueryRow(`INSERT INTO order_items (order_id, product_name, product_sku, quantity, unit_price, total_price)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING item_id`,
			it.OrderID, it.ProductName, it.ProductSKU, it.Quantity, it.UnitPrice, it.TotalPrice).Scan(&it.ID)
		if err != nil {
			return Order{}, err
		}
	}

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return Order{}, err
	}
	if _, err := tx.Exec(`UPDATE carts SET updated_at = $1 WHERE cart_id = $2`, ord.CreatedAt, cartID); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	var ord Order
	err := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, id).Scan(
		&ord.ID, &ord.OrderNumber, &ord.UserID, &ord.Status, &ord.TotalAmount,
		&ord.ShippingAddress, &ord.ShippingPhone, &ord.ShippingEmail,
		&ord.PaymentMethod, &ord.PaymentStatus, &ord.CreatedAt, &ord.UpdatedAt)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}

	items, err := r.itemsByOrder(id)
	if err != nil {
		return Order{}, err
	}
	ord.Items = items
	return ord, nil
}

func (r *PostgresRepository) itemsByOrder(orderID int) ([]Item, error) {
	rows, err := r.db.Query(`SELECT item_id, order_id, product_name, product_sku, quantity, unit_price, total_price
		FROM order_items WHERE order_id = $1 ORDER BY item_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.ProductSKU, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, order_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		if err := rows.Scan(&ord.ID, &ord.OrderNumber, &ord.UserID, &ord.Status, &ord.TotalAmount,
			&ord.ShippingAddress, &ord.ShippingPhone, &ord.ShippingEmail,
			&ord.PaymentMethod, &ord.PaymentStatus, &ord.CreatedAt, &ord.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id int, status Status, now string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $1, updated_at = $2 WHERE order_id = $3`, status, now, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) HasPurchased(userID int, sku string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS (
		SELECT 1 FROM order_items oi
		JOIN orders o ON o.order_id = oi.order_id
		WHERE o.user_id = $1 AND oi.product_sku = $2 AND o.status IN ('completed', 'delivered')
	)`, userID, sku).Scan(&exists)
	return exists, err
}
