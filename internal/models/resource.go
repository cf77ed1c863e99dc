package models

import "time"

type Resource struct {
	ID          int       `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}
