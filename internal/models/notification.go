package models

import (
	"time"
)

const (
	NotificationProposal = "proposal"
	NotificationResponse = "response"
	NotificationMessage  = "message"
	NotificationContract = "contract"
	NotificationPayment  = "payment"
	NotificationReview   = "review"
)

type Notification struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
