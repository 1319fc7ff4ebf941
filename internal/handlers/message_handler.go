package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomID int    `json:"room_id"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	msg, err := h.Service.SendMessage(r.Context(), currentUserID(r), req.RoomID, req.Text)
	if err != nil {
		serviceError(w, err, "CreateMessage")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) GetMessagesForRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := intParam(r, "room_id")
	if err != nil {
		http.Error(w, "Invalid room ID", http.StatusBadRequest)
		return
	}
	messages, err := h.Service.GetMessagesForRoom(r.Context(), currentUserID(r), roomID)
	if err != nil {
		serviceError(w, err, "GetMessagesForRoom")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}
