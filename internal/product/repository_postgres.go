package product

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `product_id, sku, slug, name, description, brand_id, category_id, price, discount_price, image, is_active, is_featured, is_bestseller, is_new_arrival, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.SKU, &p.Slug, &p.Name, &p.Description, &p.BrandID, &p.CategoryID,
		&p.Price, &p.DiscountPrice, &p.Image, &p.IsActive, &p.IsFeatured, &p.IsBestseller,
		&p.IsNewArrival, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) queryProducts(query string, args ...interface{}) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) List() ([]Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY created_at DESC`)
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	return r.queryProducts(`SELECT `+productColumns+` FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)`, pq.Array(ids))
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	return scanProduct(r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE product_id = $1`, id))
}

func (r *PostgresRepository) GetBySlug(slug string) (Product, error) {
	return scanProduct(r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug))
}

func (r *PostgresRepository) ListFeatured(limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE is_active AND is_featured ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) ListBestsellers(limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE is_active AND is_bestseller ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) ListNewArrivals(limit int) ([]Product, error) {
	return r.queryProducts(`SELECT `+productColumns+` FROM products WHERE is_active AND is_new_arrival ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO products (sku, slug, name, description, brand_id, category_id, price, discount_price, image, is_active, is_featured, is_bestseller, is_new_arrival, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING product_id`,
		p.SKU, p.Slug, p.Name, p.Description, p.BrandID, p.CategoryID, p.Price, p.DiscountPrice,
		p.Image, p.IsActive, p.IsFeatured, p.IsBestseller, p.IsNewArrival, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(`UPDATE products SET sku=$1, slug=$2, name=$3, description=$4, brand_id=$5, category_id=$6, price=$7, discount_price=$8, image=$9, is_active=$10, is_featured=$11, is_bestseller=$12, is_new_arrival=$13, updated_at=$14
		WHERE product_id = $15`,
		p.SKU, p.Slug, p.Name, p.Description, p.BrandID, p.CategoryID, p.Price, p.DiscountPrice,
		p.Image, p.IsActive, p.IsFeatured, p.IsBestseller, p.IsNewArrival, p.UpdatedAt, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}
