package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/services"
)

type InsightHandler struct {
	Service *services.InsightService
}

func (h *InsightHandler) RecommendInfluencers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Product string `json:"product"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	result, err := h.Service.RecommendInfluencers(r.Context(), req.Product)
	if err != nil {
		serviceError(w, err, "RecommendInfluencers")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"recommendation": result})
}

func (h *InsightHandler) InfluencerInsight(w http.ResponseWriter, r *http.Request) {
	influencerID, err := intParam(r, "influencer_id")
	if err != nil {
		http.Error(w, "Invalid influencer ID", http.StatusBadRequest)
		return
	}
	insight, err := h.Service.InfluencerInsight(r.Context(), influencerID)
	if err != nil {
		serviceError(w, err, "InfluencerInsight")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"insight": insight})
}
