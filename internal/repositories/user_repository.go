package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelvista-backend/internal/config"
	intdb "travelvista-backend/internal/db"
	"travelvista-backend/internal/domain"
)

// User is an admin account row. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
}

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}
	if intdb.HasTable(db, "users") {
		return nil
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			username VARCHAR(100) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'admin',
			status VARCHAR(50) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// FindByLogin looks an account up by email or username.
func (r UserRepository) FindByLogin(login string) (User, error) {
	db := r.db()
	if db == nil {
		return User{}, domain.InternalError{Msg: "database not available"}
	}

	var u User
	err := db.QueryRow(`
		SELECT id, name, username, email, password_hash, role, status
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1
	`, login, login).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return User{}, err
	}
	return u, nil
}

func (r UserRepository) Exists(username, email string) (bool, error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "database not available"}
	}
	if !intdb.HasTable(db, "users") {
		return false, nil
	}
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM users WHERE username = ? OR email = ?
	`, username, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r UserRepository) Create(u User) (User, error) {
	if err := r.ensureTable(); err != nil {
		return User{}, err
	}
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, password_hash, role, status)
		VALUES (?,?,?,?,?,?)
	`, u.Name, u.Username, u.Email, u.PasswordHash, u.Role, u.Status)
	if err != nil {
		return User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}
