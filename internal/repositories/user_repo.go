package repositories

import (
	"database/sql"
	"fmt"

	"wtl-backend/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

// EnsureSchema creates the users table when missing.
func (r UserRepo) EnsureSchema() error {
	if r.DB == nil {
		return fmt.Errorf("db not available")
	}
	ddl := `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	mobile VARCHAR(50) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'USER',
	address VARCHAR(500) NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_mobile (mobile),
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

// FindByMobile returns the user plus password hash for login.
func (r UserRepo) FindByMobile(mobile string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT id, username, email, mobile, password_hash, role, address
		FROM users
		WHERE mobile = ?
	`, mobile).Scan(&u.ID, &u.Username, &u.Email, &u.Mobile, &hash, &u.Role, &u.Address)
	if err != nil {
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT id, username, email, mobile, role, address
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.Mobile, &u.Role, &u.Address)
	return u, err
}

func (r UserRepo) Exists(email, mobile string) (bool, error) {
	var count int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM users
		WHERE email = ? OR mobile = ?
	`, email, mobile).Scan(&count)
	return count > 0, err
}

func (r UserRepo) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (username, email, mobile, password_hash, role, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`, u.Username, u.Email, u.Mobile, passwordHash, u.Role, u.Address)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// IsNoRows reports whether err is the empty-result sentinel.
func IsNoRows(err error) bool {
	return err == sql.ErrNoRows
}
