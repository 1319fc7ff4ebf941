package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type BrandHandler struct {
	Service *services.BrandService
}

func (h *BrandHandler) GetBrandByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid brand ID", http.StatusBadRequest)
		return
	}
	brand, err := h.Service.GetBrandByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "GetBrandByID")
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	brand, err := h.Service.GetBrandByUserID(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "GetMyProfile")
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

func (h *BrandHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var brand models.Brand
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateProfile(r.Context(), currentUserID(r), brand)
	if err != nil {
		serviceError(w, err, "UpdateProfile")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
