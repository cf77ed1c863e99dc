package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"staffhub/internal/models"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithCommission inserts the booking and its commission in one
// transaction. Either both rows land or neither does.
func (r *BookingRepository) CreateWithCommission(booking *models.Booking, commission *models.Commission) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	const bookingQ = `
		INSERT INTO bookings (user_id, client_name, meeting_date, sale_amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if err := tx.QueryRow(bookingQ,
		booking.UserID, booking.ClientName, booking.MeetingDate, booking.SaleAmount, booking.CreatedAt,
	).Scan(&booking.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert booking: %w", err)
	}

	const commissionQ = `
		INSERT INTO commissions (booking_id, user_id, commission_amount, is_paid, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id
	`
	commission.BookingID = booking.ID
	commission.CreatedAt = booking.CreatedAt
	if err := tx.QueryRow(commissionQ,
		commission.BookingID, commission.UserID, commission.CommissionAmount, commission.CreatedAt,
	).Scan(&commission.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert commission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	return nil
}

const bookingColumns = `id, user_id, client_name, meeting_date, sale_amount, created_at`

func (r *BookingRepository) ListBookings(limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY meeting_date DESC LIMIT $1 OFFSET $2`
	return r.queryBookings(query, limit, offset)
}

func (r *BookingRepository) ListBookingsByUser(userID, limit, offset int) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY meeting_date DESC LIMIT $2 OFFSET $3`
	return r.queryBookings(query, userID, limit, offset)
}

func (r *BookingRepository) queryBookings(query string, args ...interface{}) ([]*models.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var out []*models.Booking
	for rows.Next() {
		b := &models.Booking{}
		if err := rows.Scan(&b.ID, &b.UserID, &b.ClientName, &b.MeetingDate, &b.SaleAmount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

const commissionColumns = `id, booking_id, user_id, commission_amount, is_paid, created_at`

func (r *BookingRepository) ListCommissions(limit, offset int) ([]*models.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryCommissions(query, limit, offset)
}

func (r *BookingRepository) ListCommissionsByUser(userID, limit, offset int) ([]*models.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryCommissions(query, userID, limit, offset)
}

func (r *BookingRepository) queryCommissions(query string, args ...interface{}) ([]*models.Commission, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()

	var out []*models.Commission
	for rows.Next() {
		cm := &models.Commission{}
		if err := rows.Scan(&cm.ID, &cm.BookingID, &cm.UserID, &cm.CommissionAmount, &cm.IsPaid, &cm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}

// MarkCommissionPaid is idempotent: re-marking a paid row is a no-op update.
func (r *BookingRepository) MarkCommissionPaid(id int) (*models.Commission, error) {
	const query = `
		UPDATE commissions
		SET is_paid = true
		WHERE id = $1
		RETURNING ` + commissionColumns
	cm := &models.Commission{}
	err := r.db.QueryRow(query, id).Scan(&cm.ID, &cm.BookingID, &cm.UserID, &cm.CommissionAmount, &cm.IsPaid, &cm.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mark commission paid: %w", err)
	}
	return cm, nil
}

// UpdateCommission applies a manual admin adjustment; nil fields stay as is.
func (r *BookingRepository) UpdateCommission(id int, amount *float64, isPaid *bool) (*models.Commission, error) {
	sets := []string{}
	args := []interface{}{}
	i := 1

	if amount != nil {
		sets = append(sets, fmt.Sprintf("commission_amount = $%d", i))
		args = append(args, *amount)
		i++
	}
	if isPaid != nil {
		sets = append(sets, fmt.Sprintf("is_paid = $%d", i))
		args = append(args, *isPaid)
		i++
	}
	if len(sets) == 0 {
		return r.GetCommissionByID(id)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE commissions SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), i, commissionColumns)
	cm := &models.Commission{}
	err := r.db.QueryRow(query, args...).Scan(&cm.ID, &cm.BookingID, &cm.UserID, &cm.CommissionAmount, &cm.IsPaid, &cm.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update commission: %w", err)
	}
	return cm, nil
}

func (r *BookingRepository) GetCommissionByID(id int) (*models.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`
	cm := &models.Commission{}
	err := r.db.QueryRow(query, id).Scan(&cm.ID, &cm.BookingID, &cm.UserID, &cm.CommissionAmount, &cm.IsPaid, &cm.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get commission by id: %w", err)
	}
	return cm, nil
}

// StatementRows joins commissions with their bookings and reps for the
// admin statement export.
func (r *BookingRepository) StatementRows() ([]models.StatementRow, error) {
	const query = `
		SELECT u.name, b.client_name, b.meeting_date, b.sale_amount, c.commission_amount, c.is_paid
		FROM commissions c
		JOIN bookings b ON b.id = c.booking_id
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("statement rows: %w", err)
	}
	defer rows.Close()

	var out []models.StatementRow
	for rows.Next() {
		var sr models.StatementRow
		if err := rows.Scan(&sr.RepName, &sr.ClientName, &sr.MeetingDate, &sr.SaleAmount, &sr.CommissionAmount, &sr.IsPaid); err != nil {
			return nil, fmt.Errorf("scan statement row: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

// BookingTotals returns the booking count and summed sale amounts.
func (r *BookingRepository) BookingTotals() (int, float64, error) {
	var count int
	var total float64
	err := r.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(sale_amount), 0) FROM bookings`).Scan(&count, &total)
	return count, total, err
}

func (r *BookingRepository) UnpaidCommissionTotal() (float64, error) {
	var total float64
	err := r.db.QueryRow(`SELECT COALESCE(SUM(commission_amount), 0) FROM commissions WHERE NOT is_paid`).Scan(&total)
	return total, err
}
