package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"staffhub/internal/models"
)

type ResourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(res *models.Resource) error {
	const query = `
		INSERT INTO resources (category, title, description, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	return r.db.QueryRow(query, res.Category, res.Title, res.Description, res.URL, res.CreatedAt).Scan(&res.ID)
}

// List returns all resources, optionally filtered by category.
func (r *ResourceRepository) List(category string) ([]*models.Resource, error) {
	query := `SELECT id, category, title, description, url, created_at FROM resources`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	defer rows.Close()

	var out []*models.Resource
	for rows.Next() {
		res := &models.Resource{}
		if err := rows.Scan(&res.ID, &res.Category, &res.Title, &res.Description, &res.URL, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
