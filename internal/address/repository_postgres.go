package address

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const addressColumns = `address_id, user_id, full_name, phone, address_line1, address_line2, city, state, postal_code, country, is_default, created_at, updated_at`

func scanAddress(row interface{ Scan(...interface{}) error }) (Address, error) {
	var a Address
	err := row.Scan(&a.ID, &a.UserID, &a.FullName, &a.Phone, &a.AddressLine1, &a.AddressLine2,
		&a.City, &a.State, &a.PostalCode, &a.Country, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(`SELECT `+addressColumns+` FROM shipping_addresses WHERE user_id = $1 ORDER BY is_default DESC, address_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Address, error) {
	return scanAddress(r.db.QueryRow(`SELECT `+addressColumns+` FROM shipping_addresses WHERE address_id = $1`, id))
}

func (r *PostgresRepository) Create(a Address) (Address, error) {
	if a.IsDefault {
		if err := r.clearDefault(a.UserID); err != nil {
			return Address{}, err
		}
	}
	err := r.db.QueryRow(`INSERT INTO shipping_addresses (user_id, full_name, phone, address_line1, address_line2, city, state, postal_code, country, is_default, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING address_id`,
		a.UserID, a.FullName, a.Phone, a.AddressLine1, a.AddressLine2, a.City, a.State,
		a.PostalCode, a.Country, a.IsDefault, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Update(a Address) (Address, error) {
	if a.IsDefault {
		if err := r.clearDefault(a.UserID); err != nil {
			return Address{}, err
		}
	}
	res, err := r.db.Exec(`UPDATE shipping_addresses SET full_name=$1, phone=$2, address_line1=$3, address_line2=$4, city=$5, state=$6, postal_code=$7, country=$8, is_default=$9, updated_at=$10
		WHERE address_id = $11`,
		a.FullName, a.Phone, a.AddressLine1, a.AddressLine2, a.City, a.State,
		a.PostalCode, a.Country, a.IsDefault, a.UpdatedAt, a.ID)
	if err != nil {
		return Address{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Address{}, ErrNotFound
	}
	return a, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM shipping_addresses WHERE address_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) clearDefault(userID int) error {
	_, err := r.db.Exec(`UPDATE shipping_addresses SET is_default = FALSE WHERE user_id = $1 AND is_default`, userID)
	return err
}
