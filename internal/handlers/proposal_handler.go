package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type ProposalHandler struct {
	Service *services.ProposalService
}

func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	var input services.SubmitProposalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	proposal, err := h.Service.SubmitProposal(r.Context(), currentUserID(r), input)
	if err != nil {
		serviceError(w, err, "CreateProposal")
		return
	}
	writeJSON(w, http.StatusCreated, proposal)
}

func (h *ProposalHandler) RespondToProposal(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}
	var decision models.ProposalDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	room, err := h.Service.RespondToProposal(r.Context(), currentUserID(r), id, decision.Decision)
	if err != nil {
		serviceError(w, err, "RespondToProposal")
		return
	}
	if room.ID == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *ProposalHandler) GetProposalByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}
	proposal, err := h.Service.GetProposalByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "GetProposalByID")
		return
	}
	writeJSON(w, http.StatusOK, proposal)
}

func (h *ProposalHandler) GetMyProposals(w http.ResponseWriter, r *http.Request) {
	var (
		proposals []models.Proposal
		err       error
	)
	if currentRole(r) == models.RoleBrand {
		proposals, err = h.Service.GetProposalsForBrand(r.Context(), currentUserID(r))
	} else {
		proposals, err = h.Service.GetProposalsForInfluencer(r.Context(), currentUserID(r))
	}
	if err != nil {
		serviceError(w, err, "GetMyProposals")
		return
	}
	writeJSON(w, http.StatusOK, proposals)
}
