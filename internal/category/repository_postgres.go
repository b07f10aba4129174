package category

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

func (r *PostgresRepository) ListCategories(limit int) ([]Category, error) {
	rows, err := r.db.Query(`SELECT category_id, name, slug, description, image FROM categories
		ORDER BY COALESCE(sort_order, 0), category_id LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			c    Category
			desc sql.NullString
			img  sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &desc, &img); err != nil {
			return nil, err
		}
		if desc.Valid {
			c.Description = &desc.String
		}
		if img.Valid {
			c.Image = &img.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetCategoryBySlug(slug string) (Category, error) {
	var (
		c    Category
		desc sql.NullString
		img  sql.NullString
	)
	err := r.db.QueryRow(`SELECT category_id, name, slug, description, image FROM categories WHERE slug = $1`, slug).
		Scan(&c.ID, &c.Name, &c.Slug, &desc, &img)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	if img.Valid {
		c.Image = &img.String
	}
	return c, nil
}

func (r *PostgresRepository) ListBrands(limit int) ([]Brand, error) {
	rows, err := r.db.Query(`SELECT brand_id, name, slug, logo FROM brands ORDER BY name, brand_id LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Brand, 0)
	for rows.Next() {
		var (
			b    Brand
			logo sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &logo); err != nil {
			return nil, err
		}
		if logo.Valid {
			b.Logo = &logo.String
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
