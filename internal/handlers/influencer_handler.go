package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"influBack/internal/models"
	"influBack/internal/services"
)

type InfluencerHandler struct {
	Service *services.InfluencerService
}

func (h *InfluencerHandler) GetInfluencers(w http.ResponseWriter, r *http.Request) {
	filter := models.InfluencerFilter{
		Category: r.URL.Query().Get("category"),
		Platform: r.URL.Query().Get("platform"),
	}
	if v := r.URL.Query().Get("min_followers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid min_followers", http.StatusBadRequest)
			return
		}
		filter.MinFollowers = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid offset", http.StatusBadRequest)
			return
		}
		filter.Offset = n
	}

	influencers, err := h.Service.GetInfluencers(r.Context(), filter)
	if err != nil {
		serviceError(w, err, "GetInfluencers")
		return
	}
	writeJSON(w, http.StatusOK, influencers)
}

func (h *InfluencerHandler) GetInfluencerByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid influencer ID", http.StatusBadRequest)
		return
	}
	inf, err := h.Service.GetInfluencerByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "GetInfluencerByID")
		return
	}
	writeJSON(w, http.StatusOK, inf)
}

func (h *InfluencerHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	inf, err := h.Service.GetInfluencerByUserID(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "GetMyProfile")
		return
	}
	writeJSON(w, http.StatusOK, inf)
}

func (h *InfluencerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var inf models.Influencer
	if err := json.NewDecoder(r.Body).Decode(&inf); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateProfile(r.Context(), currentUserID(r), inf)
	if err != nil {
		serviceError(w, err, "UpdateProfile")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
