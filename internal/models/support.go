package models

import "time"

// Announcement is a broadcast message shown on the dashboard.
type Announcement struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type SupportRequest struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
