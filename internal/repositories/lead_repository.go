package repositories

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"staffhub/internal/models"
)

type LeadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &LeadRepository{db: db}
}

const leadColumns = `id, name, contact, industry, region, quantity, status, assigned_to, requested_by, notes, tags, created_at, updated_at`

func (r *LeadRepository) Create(lead *models.Lead) error {
	const query = `
		INSERT INTO leads (name, contact, industry, region, quantity, status, assigned_to, requested_by, notes, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id
	`
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	lead.UpdatedAt = lead.CreatedAt
	return r.db.QueryRow(query,
		lead.Name, lead.Contact, lead.Industry, lead.Region, lead.Quantity,
		lead.Status, lead.AssignedTo, lead.RequestedBy, lead.Notes, lead.Tags,
		lead.CreatedAt,
	).Scan(&lead.ID)
}

func (r *LeadRepository) GetByID(id int) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	lead := &models.Lead{}
	err := r.db.QueryRow(query, id).Scan(
		&lead.ID, &lead.Name, &lead.Contact, &lead.Industry, &lead.Region,
		&lead.Quantity, &lead.Status, &lead.AssignedTo, &lead.RequestedBy,
		&lead.Notes, &lead.Tags, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lead by id: %w", err)
	}
	return lead, nil
}

// UpdateFields applies a partial update; nil pointers leave the column alone.
func (r *LeadRepository) UpdateFields(id int, status, notes, tags *string) error {
	sets := []string{}
	args := []interface{}{}
	i := 1

	if status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", i))
		args = append(args, *status)
		i++
	}
	if notes != nil {
		sets = append(sets, fmt.Sprintf("notes = $%d", i))
		args = append(args, *notes)
		i++
	}
	if tags != nil {
		sets = append(sets, fmt.Sprintf("tags = $%d", i))
		args = append(args, *tags)
		i++
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", i))
	args = append(args, time.Now())
	i++
	args = append(args, id)

	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d", strings.Join(sets, ", "), i)
	_, err := r.db.Exec(query, args...)
	return err
}

// AssignMany sets assignee and status in one statement for the whole batch.
func (r *LeadRepository) AssignMany(ids []int, userID int) error {
	const query = `
		UPDATE leads
		SET assigned_to = $1, status = $2, updated_at = $3
		WHERE id = ANY($4)
	`
	_, err := r.db.Exec(query, userID, models.LeadStatusAssigned, time.Now(), pq.Array(ids))
	return err
}

func (r *LeadRepository) ListAll(limit, offset int) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryLeads(query, limit, offset)
}

// ListVisibleTo returns leads the user either requested or is assigned to.
func (r *LeadRepository) ListVisibleTo(userID, limit, offset int) ([]*models.Lead, error) {
	query := `SELECT ` + leadColumns + `
		FROM leads
		WHERE assigned_to = $1 OR requested_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.queryLeads(query, userID, limit, offset)
}

func (r *LeadRepository) queryLeads(query string, args ...interface{}) ([]*models.Lead, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		lead := &models.Lead{}
		if err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Contact, &lead.Industry, &lead.Region,
			&lead.Quantity, &lead.Status, &lead.AssignedTo, &lead.RequestedBy,
			&lead.Notes, &lead.Tags, &lead.CreatedAt, &lead.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, lead)
	}
	return out, rows.Err()
}

func (r *LeadRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
