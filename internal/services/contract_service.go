package services

import (
	"context"
	"errors"
	"fmt"

	"influBack/internal/models"
)

type ContractStore interface {
	GetContractByID(ctx context.Context, id int) (models.Contract, error)
	GetContractByProposalID(ctx context.Context, proposalID int) (models.Contract, error)
	CreateContract(ctx context.Context, c models.Contract) (models.Contract, error)
	Sign(ctx context.Context, contractID int, role string) (models.Contract, error)
}

type ContractService struct {
	ContractRepo ContractStore
	ProposalRepo ProposalStore
	Client       ChatCompletionClient
	Model        string
	Notifier     Notifier
}

const contractSystemPrompt = "You are a legal expert. Please draft an influencer marketing contract."

func buildContractPrompt(brandName, influencerName string, budget float64, duration string) string {
	return fmt.Sprintf("Brand: %s, Influencer: %s, Budget: $%.0f, Duration: %s, Deliverables: ",
		brandName, influencerName, budget, duration)
}

// GetOrGenerateContract returns the contract for an accepted proposal,
// generating it on first access. A failed generation leaves no row behind,
// so the next call retries from scratch.
func (s *ContractService) GetOrGenerateContract(ctx context.Context, proposalID int) (models.Contract, error) {
	proposal, err := s.ProposalRepo.GetProposalByID(ctx, proposalID)
	if err != nil {
		return models.Contract{}, err
	}
	if proposal.Status != models.ProposalAccepted {
		return models.Contract{}, models.ErrProposalNotAccepted
	}

	contract, err := s.ContractRepo.GetContractByProposalID(ctx, proposalID)
	if err == nil {
		return contract, nil
	}
	if !errors.Is(err, models.ErrContractNotFound) {
		return models.Contract{}, err
	}

	resp, err := s.Client.Complete(ctx, ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.3,
		Messages: []ChatMessageParam{
			{Role: "system", Content: contractSystemPrompt},
			{Role: "user", Content: buildContractPrompt(proposal.CompanyName, proposal.ChannelName, proposal.Budget, proposal.Schedule)},
		},
	})
	if err != nil {
		return models.Contract{}, fmt.Errorf("generate contract: %w", err)
	}

	return s.ContractRepo.CreateContract(ctx, models.Contract{
		ProposalID: proposalID,
		Content:    resp.Content,
	})
}

// Sign records the caller's signature. The caller's role is resolved against
// the proposal's stored party user ids, not taken from the request, and the
// pending -> signed transition is decided by the store from fresh flags.
func (s *ContractService) Sign(ctx context.Context, callerUserID, contractID int) (models.Contract, error) {
	contract, err := s.ContractRepo.GetContractByID(ctx, contractID)
	if err != nil {
		return models.Contract{}, err
	}

	brandUserID, influencerUserID, err := s.ProposalRepo.PartyUserIDs(ctx, contract.ProposalID)
	if err != nil {
		return models.Contract{}, err
	}

	var role string
	switch callerUserID {
	case brandUserID:
		role = models.RoleBrand
	case influencerUserID:
		role = models.RoleInfluencer
	default:
		return models.Contract{}, models.ErrNotContractParty
	}

	signed, err := s.ContractRepo.Sign(ctx, contractID, role)
	if err != nil {
		return models.Contract{}, err
	}

	if signed.Status == models.ContractSigned && contract.Status != models.ContractSigned {
		msg := fmt.Sprintf("Contract #%d is fully signed", contractID)
		s.Notifier.Notify(ctx, brandUserID, models.NotificationContract, "Contract signed", msg)
		s.Notifier.Notify(ctx, influencerUserID, models.NotificationContract, "Contract signed", msg)
	}

	return signed, nil
}

func (s *ContractService) GetContractByID(ctx context.Context, id int) (models.Contract, error) {
	return s.ContractRepo.GetContractByID(ctx, id)
}
