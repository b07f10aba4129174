package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `user_id, email, password, first_name, last_name, phone, gender, skin_type, skin_concerns, date_of_birth, is_admin, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Phone,
		&u.Gender, &u.SkinType, &u.SkinConcerns, &u.DateOfBirth, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE user_id = $1`, id))
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(`INSERT INTO users (email, password, first_name, last_name, phone, gender, skin_type, skin_concerns, date_of_birth, is_admin, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING user_id`,
		u.Email, u.Password, u.FirstName, u.LastName, u.Phone, u.Gender,
		u.SkinType, u.SkinConcerns, u.DateOfBirth, u.IsAdmin, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	res, err := r.db.Exec(`UPDATE users SET email=$1, password=$2, first_name=$3, last_name=$4, phone=$5, gender=$6, skin_type=$7, skin_concerns=$8, date_of_birth=$9, updated_at=$10
		WHERE user_id = $11`,
		u.Email, u.Password, u.FirstName, u.LastName, u.Phone, u.Gender,
		u.SkinType, u.SkinConcerns, u.DateOfBirth, u.UpdatedAt, id)
	if err != nil {
		return User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return User{}, ErrNotFound
	}
	u.ID = id
	return u, nil
}
