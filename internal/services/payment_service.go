package services

import (
	"context"
	"fmt"
	"time"

	"influBack/internal/models"
)

type PaymentStore interface {
	CreatePaymentWithCampaign(ctx context.Context, payment models.Payment, campaign models.Campaign) (models.Payment, models.Campaign, error)
	GetPaymentByContractID(ctx context.Context, contractID int) (models.Payment, error)
}

type PaymentService struct {
	PaymentRepo  PaymentStore
	ContractRepo ContractStore
	ProposalRepo ProposalStore
	Notifier     Notifier
}

const campaignDuration = 30 * 24 * time.Hour

// Pay records the simulated settlement for a fully signed contract and starts
// the campaign. Payment and campaign are written in one transaction; a second
// Pay for the same contract returns ErrAlreadyPaid.
func (s *PaymentService) Pay(ctx context.Context, callerUserID, contractID int) (models.Payment, models.Campaign, error) {
	contract, err := s.ContractRepo.GetContractByID(ctx, contractID)
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}
	if contract.Status != models.ContractSigned {
		return models.Payment{}, models.Campaign{}, models.ErrContractNotSigned
	}

	proposal, err := s.ProposalRepo.GetProposalByID(ctx, contract.ProposalID)
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}

	brandUserID, influencerUserID, err := s.ProposalRepo.PartyUserIDs(ctx, contract.ProposalID)
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}
	if callerUserID != brandUserID {
		return models.Payment{}, models.Campaign{}, models.ErrForbidden
	}

	now := time.Now()
	payment, campaign, err := s.PaymentRepo.CreatePaymentWithCampaign(ctx,
		models.Payment{
			ContractID: contractID,
			Amount:     proposal.Budget,
		},
		models.Campaign{
			BrandID:      proposal.BrandID,
			InfluencerID: proposal.InfluencerID,
			ProposalID:   proposal.ID,
			BrandName:    proposal.CompanyName,
			StartDate:    now,
			EndDate:      now.Add(campaignDuration),
			Budget:       proposal.Budget,
		},
	)
	if err != nil {
		return models.Payment{}, models.Campaign{}, err
	}

	s.Notifier.Notify(ctx, influencerUserID, models.NotificationPayment,
		"Payment completed",
		fmt.Sprintf("Campaign %q has started", proposal.CampaignName))

	return payment, campaign, nil
}

func (s *PaymentService) GetPaymentByContractID(ctx context.Context, contractID int) (models.Payment, error) {
	return s.PaymentRepo.GetPaymentByContractID(ctx, contractID)
}
