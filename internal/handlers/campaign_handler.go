package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/services"
)

type CampaignHandler struct {
	Service *services.CampaignService
}

func (h *CampaignHandler) GetCampaignByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid campaign ID", http.StatusBadRequest)
		return
	}
	campaign, err := h.Service.GetCampaignByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "GetCampaignByID")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) GetCampaignByProposalID(w http.ResponseWriter, r *http.Request) {
	proposalID, err := intParam(r, "proposal_id")
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}
	campaign, err := h.Service.GetCampaignByProposalID(r.Context(), proposalID)
	if err != nil {
		serviceError(w, err, "GetCampaignByProposalID")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) GetMyCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.GetCampaignsForUser(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "GetMyCampaigns")
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) CompleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid campaign ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.CompleteCampaign(r.Context(), currentUserID(r), id); err != nil {
		serviceError(w, err, "CompleteCampaign")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *CampaignHandler) UpdateMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid campaign ID", http.StatusBadRequest)
		return
	}
	var req struct {
		Reach          int     `json:"reach"`
		EngagementRate float64 `json:"engagement_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateMetrics(r.Context(), currentUserID(r), id, req.Reach, req.EngagementRate); err != nil {
		serviceError(w, err, "UpdateMetrics")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *CampaignHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid campaign ID", http.StatusBadRequest)
		return
	}
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	report, err := h.Service.GenerateReport(r.Context(), currentUserID(r), id, req.Feedback)
	if err != nil {
		serviceError(w, err, "GenerateReport")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Report string `json:"report"`
	}{report})
}
