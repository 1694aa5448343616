package repository

import (
	"bank-admin-api/model"
	"database/sql"
)

type IUserRepository interface {
	GetAllUsers() ([]*model.User, error)
	GetUserByID(id int64) (*model.User, error)
	CreateUser(user *model.User) error
	UpdateUser(user *model.User) error
	DeleteUser(tx *sql.Tx, id int64) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetAllUsers() ([]*model.User, error) {
	query := `SELECT id, name, birthdate, address FROM users`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Birthdate, &u.Address); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetUserByID(id int64) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, birthdate, address FROM users WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(&user.ID, &user.Name, &user.Birthdate, &user.Address)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (name, birthdate, address) VALUES ($1, $2, $3) RETURNING id`
	return r.DB.QueryRow(query, user.Name, user.Birthdate, user.Address).Scan(&user.ID)
}

func (r *UserRepository) UpdateUser(user *model.User) error {
	query := `UPDATE users SET name = $1, birthdate = $2, address = $3 WHERE id = $4`
	_, err := r.DB.Exec(query, user.Name, user.Birthdate, user.Address, user.ID)
	return err
}

// DeleteUser runs inside the caller's transaction so that the user row is
// removed together with its accounts and cards.
func (r *UserRepository) DeleteUser(tx *sql.Tx, id int64) error {
	_, err := tx.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}
