package handlers

import (
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	contractID, err := intParam(r, "contract_id")
	if err != nil {
		http.Error(w, "Invalid contract ID", http.StatusBadRequest)
		return
	}
	payment, campaign, err := h.Service.Pay(r.Context(), currentUserID(r), contractID)
	if err != nil {
		serviceError(w, err, "Pay")
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Payment  models.Payment  `json:"payment"`
		Campaign models.Campaign `json:"campaign"`
	}{payment, campaign})
}

func (h *PaymentHandler) GetPaymentByContractID(w http.ResponseWriter, r *http.Request) {
	contractID, err := intParam(r, "contract_id")
	if err != nil {
		http.Error(w, "Invalid contract ID", http.StatusBadRequest)
		return
	}
	payment, err := h.Service.GetPaymentByContractID(r.Context(), contractID)
	if err != nil {
		serviceError(w, err, "GetPaymentByContractID")
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
