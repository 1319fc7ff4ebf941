package services

import (
	"context"
	"fmt"
	"strings"

	"influBack/internal/models"
)

type ProposalStore interface {
	CreateProposal(ctx context.Context, p models.Proposal) (models.Proposal, error)
	GetProposalByID(ctx context.Context, id int) (models.Proposal, error)
	GetProposalsByInfluencerID(ctx context.Context, influencerID int) ([]models.Proposal, error)
	GetProposalsByBrandID(ctx context.Context, brandID int) ([]models.Proposal, error)
	RespondToProposal(ctx context.Context, proposalID int, status string) (models.ChatRoom, error)
	PartyUserIDs(ctx context.Context, proposalID int) (brandUserID, influencerUserID int, err error)
}

type BrandDirectory interface {
	GetBrandByUserID(ctx context.Context, userID int) (models.Brand, error)
}

type InfluencerDirectory interface {
	GetInfluencerByUserID(ctx context.Context, userID int) (models.Influencer, error)
}

type ProposalService struct {
	ProposalRepo ProposalStore
	Brands       BrandDirectory
	Influencers  InfluencerDirectory
	Notifier     Notifier
}

type SubmitProposalInput struct {
	InfluencerID int     `json:"influencer_id"`
	CampaignName string  `json:"campaign_name"`
	Budget       float64 `json:"budget"`
	Schedule     string  `json:"schedule"`
	Message      string  `json:"message"`
}

// SubmitProposal creates a pending offer from the caller's brand to an
// influencer. The brand id always comes from the authenticated caller,
// never from the payload.
func (s *ProposalService) SubmitProposal(ctx context.Context, callerUserID int, input SubmitProposalInput) (models.Proposal, error) {
	if strings.TrimSpace(input.CampaignName) == "" {
		return models.Proposal{}, fmt.Errorf("%w: campaign name is required", models.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Schedule) == "" {
		return models.Proposal{}, fmt.Errorf("%w: schedule is required", models.ErrInvalidInput)
	}
	if input.Budget <= 0 {
		return models.Proposal{}, fmt.Errorf("%w: budget must be positive", models.ErrInvalidInput)
	}
	if input.InfluencerID == 0 {
		return models.Proposal{}, fmt.Errorf("%w: influencer id is required", models.ErrInvalidInput)
	}

	brand, err := s.Brands.GetBrandByUserID(ctx, callerUserID)
	if err != nil {
		return models.Proposal{}, err
	}

	proposal, err := s.ProposalRepo.CreateProposal(ctx, models.Proposal{
		BrandID:      brand.ID,
		InfluencerID: input.InfluencerID,
		CampaignName: input.CampaignName,
		Budget:       input.Budget,
		Schedule:     input.Schedule,
		Message:      input.Message,
	})
	if err != nil {
		return models.Proposal{}, err
	}

	if _, influencerUserID, err := s.ProposalRepo.PartyUserIDs(ctx, proposal.ID); err == nil {
		s.Notifier.Notify(ctx, influencerUserID, models.NotificationProposal,
			"New proposal",
			fmt.Sprintf("%s sent you a proposal for %q", brand.CompanyName, proposal.CampaignName))
	}

	return proposal, nil
}

// RespondToProposal records the influencer's accept/reject decision. Only the
// proposal's target influencer may respond, and only while it is pending.
// Accepting provisions the chat room in the same transaction.
func (s *ProposalService) RespondToProposal(ctx context.Context, callerUserID, proposalID int, decision string) (models.ChatRoom, error) {
	var status string
	switch decision {
	case "accept":
		status = models.ProposalAccepted
	case "reject":
		status = models.ProposalRejected
	default:
		return models.ChatRoom{}, fmt.Errorf("%w: decision must be accept or reject", models.ErrInvalidInput)
	}

	brandUserID, influencerUserID, err := s.ProposalRepo.PartyUserIDs(ctx, proposalID)
	if err != nil {
		return models.ChatRoom{}, err
	}
	if callerUserID != influencerUserID {
		return models.ChatRoom{}, models.ErrForbidden
	}

	room, err := s.ProposalRepo.RespondToProposal(ctx, proposalID, status)
	if err != nil {
		return models.ChatRoom{}, err
	}

	verb := "accepted"
	if status == models.ProposalRejected {
		verb = "rejected"
	}
	s.Notifier.Notify(ctx, brandUserID, models.NotificationResponse,
		"Proposal "+verb,
		fmt.Sprintf("Your proposal #%d was %s", proposalID, verb))

	return room, nil
}

func (s *ProposalService) GetProposalByID(ctx context.Context, id int) (models.Proposal, error) {
	return s.ProposalRepo.GetProposalByID(ctx, id)
}

func (s *ProposalService) GetProposalsForInfluencer(ctx context.Context, callerUserID int) ([]models.Proposal, error) {
	inf, err := s.Influencers.GetInfluencerByUserID(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	return s.ProposalRepo.GetProposalsByInfluencerID(ctx, inf.ID)
}

func (s *ProposalService) GetProposalsForBrand(ctx context.Context, callerUserID int) ([]models.Proposal, error) {
	brand, err := s.Brands.GetBrandByUserID(ctx, callerUserID)
	if err != nil {
		return nil, err
	}
	return s.ProposalRepo.GetProposalsByBrandID(ctx, brand.ID)
}
