package models

import (
	"time"
)

const (
	ProposalPending  = "pending"
	ProposalAccepted = "accepted"
	ProposalRejected = "rejected"
)

type Proposal struct {
	ID           int        `json:"id"`
	BrandID      int        `json:"brand_id"`
	InfluencerID int        `json:"influencer_id"`
	CampaignName string     `json:"campaign_name"`
	Budget       float64    `json:"budget"`
	Schedule     string     `json:"schedule"`
	Message      string     `json:"message,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`

	// joined fields, filled by list queries
	CompanyName string `json:"company_name,omitempty"`
	ChannelName string `json:"channel_name,omitempty"`
}

type ProposalDecision struct {
	Decision string `json:"decision"` // "accept" or "reject"
}
