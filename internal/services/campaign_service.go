package services

import (
	"context"
	"fmt"

	"influBack/internal/models"
)

type CampaignStore interface {
	GetCampaignByID(ctx context.Context, id int) (models.Campaign, error)
	GetCampaignByProposalID(ctx context.Context, proposalID int) (models.Campaign, error)
	GetCampaignsForUser(ctx context.Context, userID int) ([]models.Campaign, error)
	CompleteCampaign(ctx context.Context, id int) error
	UpdateMetrics(ctx context.Context, id, reach int, engagementRate float64) error
	UpdateAIReport(ctx context.Context, id int, report string) error
}

type CampaignService struct {
	CampaignRepo CampaignStore
	ProposalRepo ProposalStore
	Client       ChatCompletionClient
	Model        string
}

const reportSystemPrompt = "You are a marketing analyst. Please summarize the campaign performance in one paragraph."

func (s *CampaignService) GetCampaignByID(ctx context.Context, id int) (models.Campaign, error) {
	return s.CampaignRepo.GetCampaignByID(ctx, id)
}

func (s *CampaignService) GetCampaignByProposalID(ctx context.Context, proposalID int) (models.Campaign, error) {
	return s.CampaignRepo.GetCampaignByProposalID(ctx, proposalID)
}

func (s *CampaignService) GetCampaignsForUser(ctx context.Context, userID int) ([]models.Campaign, error) {
	return s.CampaignRepo.GetCampaignsForUser(ctx, userID)
}

// partyUserIDs resolves the brand and influencer user ids behind a campaign.
func (s *CampaignService) partyUserIDs(ctx context.Context, campaign models.Campaign) (brandUserID, influencerUserID int, err error) {
	return s.ProposalRepo.PartyUserIDs(ctx, campaign.ProposalID)
}

// CompleteCampaign marks an ongoing campaign completed. Only the brand that
// runs the campaign may complete it.
func (s *CampaignService) CompleteCampaign(ctx context.Context, callerUserID, id int) error {
	campaign, err := s.CampaignRepo.GetCampaignByID(ctx, id)
	if err != nil {
		return err
	}
	brandUserID, _, err := s.partyUserIDs(ctx, campaign)
	if err != nil {
		return err
	}
	if callerUserID != brandUserID {
		return models.ErrForbidden
	}
	return s.CampaignRepo.CompleteCampaign(ctx, id)
}

// UpdateMetrics records reach and engagement. Only the campaign's influencer
// may report metrics.
func (s *CampaignService) UpdateMetrics(ctx context.Context, callerUserID, id, reach int, engagementRate float64) error {
	campaign, err := s.CampaignRepo.GetCampaignByID(ctx, id)
	if err != nil {
		return err
	}
	_, influencerUserID, err := s.partyUserIDs(ctx, campaign)
	if err != nil {
		return err
	}
	if callerUserID != influencerUserID {
		return models.ErrForbidden
	}
	return s.CampaignRepo.UpdateMetrics(ctx, id, reach, engagementRate)
}

// GenerateReport summarizes a completed campaign's performance and stores the
// result in the ai_report column. Regenerating overwrites the old report.
// Either party may request a report.
func (s *CampaignService) GenerateReport(ctx context.Context, callerUserID, campaignID int, feedback string) (string, error) {
	campaign, err := s.CampaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return "", err
	}
	brandUserID, influencerUserID, err := s.partyUserIDs(ctx, campaign)
	if err != nil {
		return "", err
	}
	if callerUserID != brandUserID && callerUserID != influencerUserID {
		return "", models.ErrForbidden
	}
	if campaign.Status != models.CampaignCompleted {
		return "", models.ErrCampaignNotCompleted
	}

	resp, err := s.Client.Complete(ctx, ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.5,
		Messages: []ChatMessageParam{
			{Role: "system", Content: reportSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("Reach: %d, Engagement Rate: %.1f%%, Feedback: %s",
				campaign.Reach, campaign.EngagementRate, feedback)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}

	if err := s.CampaignRepo.UpdateAIReport(ctx, campaignID, resp.Content); err != nil {
		return "", err
	}
	return resp.Content, nil
}
