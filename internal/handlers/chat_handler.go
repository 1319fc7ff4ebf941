package handlers

import (
	"net/http"

	"influBack/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

func (h *ChatHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid room ID", http.StatusBadRequest)
		return
	}
	room, err := h.Service.GetRoomByID(r.Context(), currentUserID(r), id)
	if err != nil {
		serviceError(w, err, "GetRoomByID")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *ChatHandler) GetRoomByProposalID(w http.ResponseWriter, r *http.Request) {
	proposalID, err := intParam(r, "proposal_id")
	if err != nil {
		http.Error(w, "Invalid proposal ID", http.StatusBadRequest)
		return
	}
	room, err := h.Service.GetRoomByProposalID(r.Context(), proposalID)
	if err != nil {
		serviceError(w, err, "GetRoomByProposalID")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *ChatHandler) GetMyRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.GetRoomsForUser(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "GetMyRooms")
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}
