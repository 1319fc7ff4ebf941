package models

import (
	"time"
)

const (
	ContractPending = "pending"
	ContractSigned  = "signed"
)

type Contract struct {
	ID                 int        `json:"id"`
	ProposalID         int        `json:"proposal_id"`
	Content            string     `json:"content"`
	SignedByBrand      bool       `json:"signed_by_brand"`
	SignedByInfluencer bool       `json:"signed_by_influencer"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}
