package models

import "time"

type Booking struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ClientName  string    `json:"client_name"`
	MeetingDate string    `json:"meeting_date"`
	SaleAmount  float64   `json:"sale_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type Commission struct {
	ID               int       `json:"id"`
	BookingID        int       `json:"booking_id"`
	UserID           int       `json:"user_id"`
	CommissionAmount float64   `json:"commission_amount"`
	IsPaid           bool      `json:"is_paid"`
	CreatedAt        time.Time `json:"created_at"`
}

// StatementRow is one line of the admin commission statement export.
type StatementRow struct {
	RepName          string
	ClientName       string
	MeetingDate      string
	SaleAmount       float64
	CommissionAmount float64
	IsPaid           bool
}
