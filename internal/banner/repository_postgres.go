package banner

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

func (r *PostgresRepository) ListActive(now string, limit int) ([]Banner, error) {
	rows, err := r.db.Query(`SELECT banner_id, title, subtitle, image, link FROM banners
		WHERE is_active
		  AND (starts_at = '' OR starts_at <= $1)
		  AND (ends_at = '' OR ends_at >= $1)
		ORDER BY COALESCE(sort_order, 0) DESC, banner_id
		LIMIT $2`, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Banner, 0)
	for rows.Next() {
		var (
			b        Banner
			subtitle sql.NullString
			image    sql.NullString
			link     sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Title, &subtitle, &image, &link); err != nil {
			return nil, err
		}
		b.IsActive = true
		if subtitle.Valid {
			b.Subtitle = &subtitle.String
		}
		if image.Valid {
			b.Image = &image.String
		}
		if link.Valid {
			b.Link = &link.String
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
