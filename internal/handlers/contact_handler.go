package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
}

func (h *ContactHandler) CreateContactRequest(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateContactRequest(r.Context(), req)
	if err != nil {
		serviceError(w, err, "CreateContactRequest")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ContactHandler) GetContactRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.GetContactRequests(r.Context())
	if err != nil {
		serviceError(w, err, "GetContactRequests")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
