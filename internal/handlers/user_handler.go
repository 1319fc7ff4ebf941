package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	resp, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		serviceError(w, err, "SignUp")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	tokens, err := h.Service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(w, err, "SignIn")
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUserByID(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "GetMe")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.LogOut(r.Context(), currentUserID(r)); err != nil {
		serviceError(w, err, "LogOut")
		return
	}
	w.WriteHeader(http.StatusOK)
}
