package models

import (
	"time"
)

type Influencer struct {
	ID             int        `json:"id"`
	UserID         int        `json:"user_id"`
	ChannelName    string     `json:"channel_name"`
	Followers      int        `json:"followers"`
	EngagementRate float64    `json:"engagement_rate"`
	Categories     []string   `json:"categories"`
	Platforms      []string   `json:"platforms"`
	ContentURLs    []string   `json:"content_urls"`
	Rating         float64    `json:"rating"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type InfluencerFilter struct {
	Category     string `json:"category"`
	Platform     string `json:"platform"`
	MinFollowers int    `json:"min_followers"`
	Limit        int    `json:"limit"`
	Offset       int    `json:"offset"`
}
