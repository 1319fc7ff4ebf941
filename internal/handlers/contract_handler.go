package handlers

import (
	"net/http"

	"influBack/internal/services"
)

type ContractHandler struct {
	Service *services.ContractService
}

// GetContractForProposal returns the contract for a proposal, generating it
// on first access.
func (h *ContractHandler) GetContractForProposal(w http.ResponseWriter, r *http.Request) {
	proposalID, err := intParam(r, "proposal_id")
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}
	contract, err := h.Service.GetOrGenerateContract(r.Context(), proposalID)
	if err != nil {
		serviceError(w, err, "GetContractForProposal")
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Sign(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid contract ID", http.StatusBadRequest)
		return
	}
	contract, err := h.Service.Sign(r.Context(), currentUserID(r), id)
	if err != nil {
		serviceError(w, err, "Sign")
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) GetContractByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid contract ID", http.StatusBadRequest)
		return
	}
	contract, err := h.Service.GetContractByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "GetContractByID")
		return
	}
	writeJSON(w, http.StatusOK, contract)
}
