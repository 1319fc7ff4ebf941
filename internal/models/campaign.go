package models

import (
	"time"
)

const (
	CampaignPending   = "pending"
	CampaignOngoing   = "ongoing"
	CampaignCompleted = "completed"
)

type Campaign struct {
	ID             int        `json:"id"`
	BrandID        int        `json:"brand_id"`
	InfluencerID   int        `json:"influencer_id"`
	ProposalID     int        `json:"proposal_id"`
	BrandName      string     `json:"brand_name"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Budget         float64    `json:"budget"`
	Reach          int        `json:"reach"`
	EngagementRate float64    `json:"engagement_rate"`
	Status         string     `json:"status"`
	AIReport       string     `json:"ai_report,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}
