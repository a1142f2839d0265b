package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aliyuabk/EMS/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// GetAdminByUsernameAndRole looks an admin up by the full login key. The
// role is part of the key, so valid credentials for one role never match
// the other.
func GetAdminByUsernameAndRole(db *sql.DB, username, role string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, username, password, role, created_at, updated_at
			  FROM admins WHERE username = $1 AND role = $2`

	err := db.QueryRow(query, username, role).Scan(
		&admin.ID, &admin.Username, &admin.Password, &admin.Role,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return admin, nil
}

func GetAdminByID(db *sql.DB, adminID string) (*models.Admin, error) {
	admin := &models.Admin{}
	query := `SELECT id, username, password, role, created_at, updated_at
			  FROM admins WHERE id = $1`

	err := db.QueryRow(query, adminID).Scan(
		&admin.ID, &admin.Username, &admin.Password, &admin.Role,
		&admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return admin, nil
}

// CreateAdmin stores a new admin account with a bcrypt password hash.
func CreateAdmin(db *sql.DB, username, password, role string) (*models.Admin, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{Username: username, Password: hashed, Role: role}
	query := `INSERT INTO admins (username, password, role)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, username, hashed, role).Scan(
		&admin.ID, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", translateError(err))
	}
	return admin, nil
}
