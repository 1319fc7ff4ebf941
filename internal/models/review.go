package models

import (
	"time"
)

type Review struct {
	ID                  int       `json:"id"`
	CampaignID          int       `json:"campaign_id"`
	ReviewerID          int       `json:"reviewer_id"`
	CommunicationRating int       `json:"communication_rating"`
	PerformanceRating   int       `json:"performance_rating"`
	OverallRating       int       `json:"overall_rating"`
	Comment             string    `json:"comment,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
