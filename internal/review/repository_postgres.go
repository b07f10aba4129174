package review

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

const reviewColumns = `review_id, user_id, product_id, rating, title, comment, is_verified_purchase, helpful_votes, is_active, created_at, updated_at`

func scanReview(row interface{ Scan(...interface{}) error }) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.Rating, &rv.Title, &rv.Comment,
		&rv.IsVerifiedPurchase, &rv.HelpfulVotes, &rv.IsActive, &rv.CreatedAt, &rv.UpdatedAt)
	if err == sql.ErrNoRows {
		return Review{}, ErrNotFound
	}
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(`SELECT `+reviewColumns+` FROM reviews
		WHERE product_id = $1 AND is_active
		ORDER BY created_at DESC, review_id DESC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Review, error) {
	return scanReview(r.db.QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE review_id = $1`, id))
}

func (r *PostgresRepository) GetByUserAndProduct(userID, productID int) (Review, error) {
	return scanReview(r.db.QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE user_id = $1 AND product_id = $2`, userID, productID))
}

func (r *PostgresRepository) Create(rv Review) (Review, error) {
	err := r.db.QueryRow(`INSERT INTO reviews (user_id, product_id, rating, title, comment, is_verified_purchase, helpful_votes, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING review_id`,
		rv.UserID, rv.ProductID, rv.Rating, rv.Title, rv.Comment, rv.IsVerifiedPurchase,
		rv.HelpfulVotes, rv.IsActive, rv.CreatedAt, rv.UpdatedAt).Scan(&rv.ID)
	if err != nil {
		// the unique constraint backs up the application-level duplicate
		// check under concurrent submits
		if strings.Contains(err.Error(), "reviews_user_product_key") {
			return Review{}, ErrDuplicate
		}
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepository) Update(rv Review) (Review, error) {
	res, err := r.db.Exec(`UPDATE reviews SET rating=$1, title=$2, comment=$3, updated_at=$4 WHERE review_id = $5`,
		rv.Rating, rv.Title, rv.Comment, rv.UpdatedAt, rv.ID)
	if err != nil {
		return Review{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Review{}, ErrNotFound
	}
	return rv, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM reviews WHERE review_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetVote(userID, reviewID int) (Vote, error) {
	var v Vote
	err := r.db.QueryRow(`SELECT vote_id, user_id, review_id, vote_type FROM review_votes WHERE user_id = $1 AND review_id = $2`, userID, reviewID).
		Scan(&v.ID, &v.UserID, &v.ReviewID, &v.VoteType)
	if err == sql.ErrNoRows {
		return Vote{}, ErrVoteNotFound
	}
	if err != nil {
		return Vote{}, err
	}
	return v, nil
}

func (r *PostgresRepository) CreateVote(v Vote) (Vote, error) {
	err := r.db.QueryRow(`INSERT INTO review_votes (user_id, review_id, vote_type) VALUES ($1,$2,$3) RETURNING vote_id`,
		v.UserID, v.ReviewID, v.VoteType).Scan(&v.ID)
	if err != nil {
		return Vote{}, err
	}
	return v, nil
}

func (r *PostgresRepository) UpdateVote(v Vote) error {
	res, err := r.db.Exec(`UPDATE review_votes SET vote_type = $1 WHERE vote_id = $2`, v.VoteType, v.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrVoteNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteVote(id int) error {
	res, err := r.db.Exec(`DELETE FROM review_votes WHERE vote_id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrVoteNotFound
	}
	return nil
}

func (r *PostgresRepository) RecountHelpful(reviewID int) (int, error) {
	var count int
	err := r.db.QueryRow(`UPDATE reviews
		SET helpful_votes = (SELECT COUNT(*) FROM review_votes WHERE review_id = $1 AND vote_type = 'helpful')
		WHERE review_id = $1
		RETURNING helpful_votes`, reviewID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return count, err
}
