package models

import (
	"time"
)

type Brand struct {
	ID            int        `json:"id"`
	UserID        int        `json:"user_id"`
	CompanyName   string     `json:"company_name"`
	ContactPerson string     `json:"contact_person"`
	Website       string     `json:"website,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
