package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"staffhub/internal/apperrors"
	"staffhub/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(limit, offset int) ([]*models.User, error)
	Delete(id int) error
	GetCount() (int, error)

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	GetByRefreshToken(token string) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	err := r.DB.QueryRow(q, user.Name, user.Email, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return &apperrors.ConflictError{Message: "email already exists"}
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, refresh_token, refresh_expires_at, refresh_revoked, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRow(q, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, refresh_token, refresh_expires_at, refresh_revoked, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRow(q, email))
}

func (r *userRepository) GetByRefreshToken(token string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, refresh_token, refresh_expires_at, refresh_revoked, created_at
		FROM users
		WHERE refresh_token = $1
	`
	return r.scanOne(r.DB.QueryRow(q, token))
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, refresh_token, refresh_expires_at, refresh_revoked, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
			&u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *userRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *userRepository) GetCount() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET refresh_token = $1, refresh_expires_at = $2, refresh_revoked = false
		WHERE id = $3
	`
	_, err := r.DB.Exec(q, token, expiresAt, userID)
	return err
}

// RotateRefresh swaps the stored refresh token in one statement so the old
// token cannot be reused after the swap.
func (r *userRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	const q = `
		UPDATE users
		SET refresh_token = $1, refresh_expires_at = $2
		WHERE refresh_token = $3 AND NOT refresh_revoked
		RETURNING id, name, email, password_hash, role, refresh_token, refresh_expires_at, refresh_revoked, created_at
	`
	u := &models.User{}
	err := r.DB.QueryRow(q, newToken, newExpiresAt, oldToken).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.RefreshToken, &u.RefreshExpiresAt, &u.RefreshRevoked, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rotate refresh: %w", err)
	}
	return u, nil
}
