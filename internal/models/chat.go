package models

import (
	"time"
)

type ChatRoom struct {
	ID           int       `json:"id"`
	BrandID      int       `json:"brand_id"`
	InfluencerID int       `json:"influencer_id"`
	ProposalID   int       `json:"proposal_id"`
	CreatedAt    time.Time `json:"created_at"`

	CampaignName string `json:"campaign_name,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
	ChannelName  string `json:"channel_name,omitempty"`
}
