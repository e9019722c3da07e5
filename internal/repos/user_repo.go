package repos

import (
	"github.com/jmoiron/sqlx"

	"shopcore/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(username, email, hash string) (*domain.User, error) {
	res, err := r.DB.Exec(`INSERT INTO users(username,email,password_hash) VALUES(?,?,?)`,
		username, email, hash)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: username, Email: email, Hash: hash}, nil
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,email,password_hash FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,email,password_hash FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
