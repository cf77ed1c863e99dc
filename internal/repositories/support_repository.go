package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"staffhub/internal/models"
)

type SupportRepository struct {
	db *sql.DB
}

func NewSupportRepository(db *sql.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) CreateAnnouncement(a *models.Announcement) error {
	const query = `
		INSERT INTO announcements (user_id, body, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return r.db.QueryRow(query, a.UserID, a.Body, a.CreatedAt).Scan(&a.ID)
}

// LatestAnnouncement returns the newest announcement, or nil when none exist.
func (r *SupportRepository) LatestAnnouncement() (*models.Announcement, error) {
	const query = `
		SELECT id, user_id, body, created_at
		FROM announcements
		ORDER BY created_at DESC
		LIMIT 1
	`
	a := &models.Announcement{}
	err := r.db.QueryRow(query).Scan(&a.ID, &a.UserID, &a.Body, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest announcement: %w", err)
	}
	return a, nil
}

func (r *SupportRepository) CreateRequest(req *models.SupportRequest) error {
	const query = `
		INSERT INTO support_requests (user_id, subject, body, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	return r.db.QueryRow(query, req.UserID, req.Subject, req.Body, req.CreatedAt).Scan(&req.ID)
}

func (r *SupportRepository) ListRequests() ([]*models.SupportRequest, error) {
	const query = `
		SELECT id, user_id, subject, body, created_at
		FROM support_requests
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list support requests: %w", err)
	}
	defer rows.Close()

	var out []*models.SupportRequest
	for rows.Next() {
		req := &models.SupportRequest{}
		if err := rows.Scan(&req.ID, &req.UserID, &req.Subject, &req.Body, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan support request: %w", err)
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
