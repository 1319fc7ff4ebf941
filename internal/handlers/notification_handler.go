package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Service.GetNotifications(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "GetNotifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid notification ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.MarkRead(r.Context(), notificationID, currentUserID(r)); err != nil {
		serviceError(w, err, "MarkRead")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.UnreadCount(r.Context(), currentUserID(r))
	if err != nil {
		serviceError(w, err, "UnreadCount")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *NotificationHandler) RegisterFCMToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"fcm_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.RegisterFCMToken(r.Context(), currentUserID(r), req.Token); err != nil {
		serviceError(w, err, "RegisterFCMToken")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
