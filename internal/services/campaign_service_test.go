package services

import (
	"context"
	"errors"
	"testing"

	"influBack/internal/models"
)

func ongoingCampaign(t *testing.T, store *memStore) models.Campaign {
	t.Helper()
	_, contract := signedContract(t, store)
	psvc := &PaymentService{PaymentRepo: store, ContractRepo: store, ProposalRepo: store, Notifier: &fakeNotifier{}}
	_, campaign, err := psvc.Pay(context.Background(), 1, contract.ID)
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	return campaign
}

func TestCompleteCampaignOnlyByBrand(t *testing.T) {
	store := newMemStore()
	svc := &CampaignService{CampaignRepo: store, ProposalRepo: store, Client: &fakeLLM{reply: "REPORT"}}
	campaign := ongoingCampaign(t, store)

	// user 99 has no relation to the campaign, user 2 is the influencer
	for _, caller := range []int{99, 2} {
		if err := svc.CompleteCampaign(context.Background(), caller, campaign.ID); !errors.Is(err, models.ErrForbidden) {
			t.Fatalf("expected ErrForbidden for caller %d, got %v", caller, err)
		}
	}
	got, _ := store.GetCampaignByID(context.Background(), campaign.ID)
	if got.Status != models.CampaignOngoing {
		t.Fatalf("campaign must stay ongoing, got %q", got.Status)
	}

	if err := svc.CompleteCampaign(context.Background(), 1, campaign.ID); err != nil {
		t.Fatalf("CompleteCampaign by brand: %v", err)
	}
	got, _ = store.GetCampaignByID(context.Background(), campaign.ID)
	if got.Status != models.CampaignCompleted {
		t.Fatalf("expected completed, got %q", got.Status)
	}
}

func TestUpdateMetricsOnlyByInfluencer(t *testing.T) {
	store := newMemStore()
	svc := &CampaignService{CampaignRepo: store, ProposalRepo: store, Client: &fakeLLM{reply: "REPORT"}}
	campaign := ongoingCampaign(t, store)

	// user 99 has no relation to the campaign, user 1 is the brand
	for _, caller := range []int{99, 1} {
		if err := svc.UpdateMetrics(context.Background(), caller, campaign.ID, 70000, 3.3); !errors.Is(err, models.ErrForbidden) {
			t.Fatalf("expected ErrForbidden for caller %d, got %v", caller, err)
		}
	}
	got, _ := store.GetCampaignByID(context.Background(), campaign.ID)
	if got.Reach != 0 {
		t.Fatalf("metrics must stay untouched, got reach %d", got.Reach)
	}

	if err := svc.UpdateMetrics(context.Background(), 2, campaign.ID, 70000, 3.3); err != nil {
		t.Fatalf("UpdateMetrics by influencer: %v", err)
	}
	got, _ = store.GetCampaignByID(context.Background(), campaign.ID)
	if got.Reach != 70000 {
		t.Fatalf("metrics not stored, got reach %d", got.Reach)
	}
}

func TestGenerateReportOnlyByParties(t *testing.T) {
	store := newMemStore()
	llm := &fakeLLM{reply: "REPORT"}
	svc := &CampaignService{CampaignRepo: store, ProposalRepo: store, Client: llm}
	campaign := ongoingCampaign(t, store)

	if err := svc.CompleteCampaign(context.Background(), 1, campaign.ID); err != nil {
		t.Fatalf("CompleteCampaign: %v", err)
	}

	if _, err := svc.GenerateReport(context.Background(), 99, campaign.ID, "went well"); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for outsider, got %v", err)
	}
	if len(llm.calls) != 0 {
		t.Fatalf("outsider must not reach the model, got %d calls", len(llm.calls))
	}

	for _, caller := range []int{1, 2} {
		if _, err := svc.GenerateReport(context.Background(), caller, campaign.ID, "went well"); err != nil {
			t.Fatalf("GenerateReport by party %d: %v", caller, err)
		}
	}
}
