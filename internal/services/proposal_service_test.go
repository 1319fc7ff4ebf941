package services

import (
	"context"
	"errors"
	"testing"

	"influBack/internal/models"
)

func newProposalService(store *memStore, notifier *fakeNotifier) *ProposalService {
	return &ProposalService{
		ProposalRepo: store,
		Brands:       store,
		Influencers:  store,
		Notifier:     notifier,
	}
}

func TestSubmitProposal(t *testing.T) {
	store := newMemStore()
	notifier := &fakeNotifier{}
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	svc := newProposalService(store, notifier)

	proposal, err := svc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID,
		CampaignName: "Spring Launch",
		Budget:       1000000,
		Schedule:     "2024-03-01~2024-03-31",
		Message:      "Please consider our new product line",
	})
	if err != nil {
		t.Fatalf("SubmitProposal: %v", err)
	}
	if proposal.Status != models.ProposalPending {
		t.Fatalf("expected pending status, got %s", proposal.Status)
	}
	if proposal.Budget != 1000000 {
		t.Fatalf("budget mismatch: %v", proposal.Budget)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "2:proposal" {
		t.Fatalf("expected proposal notification for influencer's user, got %v", notifier.events)
	}
}

func TestSubmitProposalValidation(t *testing.T) {
	store := newMemStore()
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	svc := newProposalService(store, &fakeNotifier{})

	cases := []struct {
		name  string
		input SubmitProposalInput
	}{
		{"missing name", SubmitProposalInput{InfluencerID: inf.ID, Budget: 100, Schedule: "2024-03"}},
		{"missing schedule", SubmitProposalInput{InfluencerID: inf.ID, CampaignName: "X", Budget: 100}},
		{"zero budget", SubmitProposalInput{InfluencerID: inf.ID, CampaignName: "X", Schedule: "2024-03"}},
		{"negative budget", SubmitProposalInput{InfluencerID: inf.ID, CampaignName: "X", Budget: -5, Schedule: "2024-03"}},
		{"missing influencer", SubmitProposalInput{CampaignName: "X", Budget: 100, Schedule: "2024-03"}},
	}
	for _, tc := range cases {
		_, err := svc.SubmitProposal(context.Background(), 1, tc.input)
		if !errors.Is(err, models.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestRespondToProposalAcceptCreatesRoom(t *testing.T) {
	store := newMemStore()
	notifier := &fakeNotifier{}
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	svc := newProposalService(store, notifier)

	proposal, err := svc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID, CampaignName: "Spring Launch", Budget: 500, Schedule: "2024-03",
	})
	if err != nil {
		t.Fatalf("SubmitProposal: %v", err)
	}

	room, err := svc.RespondToProposal(context.Background(), 2, proposal.ID, "accept")
	if err != nil {
		t.Fatalf("RespondToProposal: %v", err)
	}
	if room.ID == 0 || room.ProposalID != proposal.ID {
		t.Fatalf("expected chat room bound to proposal, got %+v", room)
	}

	updated, _ := svc.GetProposalByID(context.Background(), proposal.ID)
	if updated.Status != models.ProposalAccepted {
		t.Fatalf("expected accepted status, got %s", updated.Status)
	}
	if notifier.events[len(notifier.events)-1] != "1:response" {
		t.Fatalf("expected response notification for brand's user, got %v", notifier.events)
	}
}

func TestRespondToProposalRejectHasNoRoom(t *testing.T) {
	store := newMemStore()
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	svc := newProposalService(store, &fakeNotifier{})

	proposal, _ := svc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID, CampaignName: "Spring Launch", Budget: 500, Schedule: "2024-03",
	})

	room, err := svc.RespondToProposal(context.Background(), 2, proposal.ID, "reject")
	if err != nil {
		t.Fatalf("RespondToProposal: %v", err)
	}
	if room.ID != 0 {
		t.Fatalf("rejecting must not create a room, got %+v", room)
	}
	if len(store.rooms) != 0 {
		t.Fatalf("expected no rooms, got %d", len(store.rooms))
	}
}

func TestRespondToProposalOnlyTargetInfluencer(t *testing.T) {
	store := newMemStore()
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	store.addInfluencer(3, "OtherChannel")
	svc := newProposalService(store, &fakeNotifier{})

	proposal, _ := svc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID, CampaignName: "Spring Launch", Budget: 500, Schedule: "2024-03",
	})

	if _, err := svc.RespondToProposal(context.Background(), 3, proposal.ID, "accept"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-target influencer, got %v", err)
	}
	if _, err := svc.RespondToProposal(context.Background(), 1, proposal.ID, "accept"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for brand user, got %v", err)
	}
}

func TestRespondToProposalResolvedTwice(t *testing.T) {
	store := newMemStore()
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	svc := newProposalService(store, &fakeNotifier{})

	proposal, _ := svc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID, CampaignName: "Spring Launch", Budget: 500, Schedule: "2024-03",
	})

	if _, err := svc.RespondToProposal(context.Background(), 2, proposal.ID, "accept"); err != nil {
		t.Fatalf("first response: %v", err)
	}
	if _, err := svc.RespondToProposal(context.Background(), 2, proposal.ID, "reject"); !errors.Is(err, models.ErrProposalResolved) {
		t.Fatalf("expected ErrProposalResolved on second response, got %v", err)
	}
}

func TestRespondToProposalInvalidDecision(t *testing.T) {
	store := newMemStore()
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	svc := newProposalService(store, &fakeNotifier{})

	proposal, _ := svc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID, CampaignName: "Spring Launch", Budget: 500, Schedule: "2024-03",
	})

	if _, err := svc.RespondToProposal(context.Background(), 2, proposal.ID, "maybe"); !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
