package services

import (
	"context"
	"errors"
	"testing"

	"influBack/internal/models"
)

func completedCampaign(t *testing.T, store *memStore) models.Campaign {
	t.Helper()
	_, contract := signedContract(t, store)
	psvc := &PaymentService{PaymentRepo: store, ContractRepo: store, ProposalRepo: store, Notifier: &fakeNotifier{}}
	_, campaign, err := psvc.Pay(context.Background(), 1, contract.ID)
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if err := store.CompleteCampaign(context.Background(), campaign.ID); err != nil {
		t.Fatalf("CompleteCampaign: %v", err)
	}
	campaign, _ = store.GetCampaignByID(context.Background(), campaign.ID)
	return campaign
}

func TestSubmitReview(t *testing.T) {
	store := newMemStore()
	svc := &ReviewService{ReviewRepo: store, CampaignRepo: store, ProposalRepo: store, Ratings: store, Notifier: &fakeNotifier{}}
	campaign := completedCampaign(t, store)

	review, err := svc.SubmitReview(context.Background(), 1, models.Review{
		CampaignID:          campaign.ID,
		CommunicationRating: 3,
		PerformanceRating:   4,
		OverallRating:       5,
		Comment:             "great",
	})
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if review.ReviewerID != 1 {
		t.Fatalf("reviewer id must come from the caller, got %d", review.ReviewerID)
	}
	if len(store.recalculated) != 1 || store.recalculated[0] != campaign.InfluencerID {
		t.Fatalf("expected rating recalculation for influencer %d, got %v", campaign.InfluencerID, store.recalculated)
	}
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	store := newMemStore()
	svc := &ReviewService{ReviewRepo: store, CampaignRepo: store, ProposalRepo: store, Ratings: store, Notifier: &fakeNotifier{}}
	campaign := completedCampaign(t, store)

	for _, rev := range []models.Review{
		{CampaignID: campaign.ID, CommunicationRating: 0, PerformanceRating: 4, OverallRating: 5},
		{CampaignID: campaign.ID, CommunicationRating: 3, PerformanceRating: 6, OverallRating: 5},
		{CampaignID: campaign.ID, CommunicationRating: 3, PerformanceRating: 4, OverallRating: -1},
	} {
		if _, err := svc.SubmitReview(context.Background(), 1, rev); !errors.Is(err, models.ErrRatingRequired) {
			t.Fatalf("expected ErrRatingRequired for %+v, got %v", rev, err)
		}
	}
	if len(store.reviews) != 0 {
		t.Fatalf("invalid ratings must not be stored, got %d", len(store.reviews))
	}
}

func TestSubmitReviewRequiresCompletedCampaign(t *testing.T) {
	store := newMemStore()
	svc := &ReviewService{ReviewRepo: store, CampaignRepo: store, ProposalRepo: store, Ratings: store, Notifier: &fakeNotifier{}}

	_, contract := signedContract(t, store)
	psvc := &PaymentService{PaymentRepo: store, ContractRepo: store, ProposalRepo: store, Notifier: &fakeNotifier{}}
	_, campaign, err := psvc.Pay(context.Background(), 1, contract.ID)
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}

	// campaign is still ongoing
	_, err = svc.SubmitReview(context.Background(), 1, models.Review{
		CampaignID: campaign.ID, CommunicationRating: 3, PerformanceRating: 4, OverallRating: 5,
	})
	if !errors.Is(err, models.ErrCampaignNotCompleted) {
		t.Fatalf("expected ErrCampaignNotCompleted, got %v", err)
	}
}

func TestSubmitReviewOnlyByBrandParty(t *testing.T) {
	store := newMemStore()
	svc := &ReviewService{ReviewRepo: store, CampaignRepo: store, ProposalRepo: store, Ratings: store, Notifier: &fakeNotifier{}}
	campaign := completedCampaign(t, store)

	rev := models.Review{CampaignID: campaign.ID, CommunicationRating: 1, PerformanceRating: 1, OverallRating: 1}
	// user 99 has no relation to the campaign, user 2 is the influencer
	for _, reviewer := range []int{99, 2} {
		if _, err := svc.SubmitReview(context.Background(), reviewer, rev); !errors.Is(err, models.ErrForbidden) {
			t.Fatalf("expected ErrForbidden for reviewer %d, got %v", reviewer, err)
		}
	}
	if len(store.reviews) != 0 {
		t.Fatalf("outsider reviews must not be stored, got %d", len(store.reviews))
	}
	if len(store.recalculated) != 0 {
		t.Fatalf("outsider reviews must not touch the rating, got %v", store.recalculated)
	}
}

func TestSubmitReviewOncePerReviewer(t *testing.T) {
	store := newMemStore()
	svc := &ReviewService{ReviewRepo: store, CampaignRepo: store, ProposalRepo: store, Ratings: store, Notifier: &fakeNotifier{}}
	campaign := completedCampaign(t, store)

	rev := models.Review{CampaignID: campaign.ID, CommunicationRating: 3, PerformanceRating: 4, OverallRating: 5}
	if _, err := svc.SubmitReview(context.Background(), 1, rev); err != nil {
		t.Fatalf("first SubmitReview: %v", err)
	}
	if _, err := svc.SubmitReview(context.Background(), 1, rev); !errors.Is(err, models.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}

func TestGenerateReportRequiresCompletedCampaign(t *testing.T) {
	store := newMemStore()
	llm := &fakeLLM{reply: "REPORT"}
	svc := &CampaignService{CampaignRepo: store, ProposalRepo: store, Client: llm}

	_, contract := signedContract(t, store)
	psvc := &PaymentService{PaymentRepo: store, ContractRepo: store, ProposalRepo: store, Notifier: &fakeNotifier{}}
	_, campaign, _ := psvc.Pay(context.Background(), 1, contract.ID)

	if _, err := svc.GenerateReport(context.Background(), 1, campaign.ID, "went well"); !errors.Is(err, models.ErrCampaignNotCompleted) {
		t.Fatalf("expected ErrCampaignNotCompleted for ongoing campaign, got %v", err)
	}

	if err := store.CompleteCampaign(context.Background(), campaign.ID); err != nil {
		t.Fatalf("CompleteCampaign: %v", err)
	}
	if err := store.UpdateMetrics(context.Background(), campaign.ID, 50000, 4.2); err != nil {
		t.Fatalf("UpdateMetrics: %v", err)
	}

	report, err := svc.GenerateReport(context.Background(), 1, campaign.ID, "went well")
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if report != "REPORT" {
		t.Fatalf("report mismatch: %q", report)
	}
	stored, _ := store.GetCampaignByID(context.Background(), campaign.ID)
	if stored.AIReport != "REPORT" {
		t.Fatalf("report not persisted: %q", stored.AIReport)
	}
	if llm.calls[0].Temperature != 0.5 {
		t.Fatalf("temperature mismatch: %v", llm.calls[0].Temperature)
	}
}
