package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	created, err := h.Service.SubmitReview(r.Context(), currentUserID(r), review)
	if err != nil {
		serviceError(w, err, "CreateReview")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ReviewHandler) GetReviewsByCampaignID(w http.ResponseWriter, r *http.Request) {
	campaignID, err := intParam(r, "campaign_id")
	if err != nil {
		http.Error(w, "Invalid campaign ID", http.StatusBadRequest)
		return
	}
	reviews, err := h.Service.GetReviewsByCampaignID(r.Context(), campaignID)
	if err != nil {
		serviceError(w, err, "GetReviewsByCampaignID")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
