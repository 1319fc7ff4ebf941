package models

import (
	"time"
)

type ContactRequest struct {
	ID            int       `json:"id"`
	Budget        float64   `json:"budget"`
	Category      string    `json:"category"`
	Link          string    `json:"link,omitempty"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}
