package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"influBack/internal/models"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.URL.Query().Get(name)
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(getParam(r, name))
}

// currentUserID reads the authenticated user id the JWT middleware put into
// the request context. Zero means unauthenticated.
func currentUserID(r *http.Request) int {
	if id, ok := r.Context().Value("user_id").(int); ok {
		return id
	}
	return 0
}

func currentRole(r *http.Request) string {
	if role, ok := r.Context().Value("role").(string); ok {
		return role
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// serviceError translates domain sentinels into HTTP status codes. Anything
// unrecognized is logged and reported as a plain 500.
func serviceError(w http.ResponseWriter, err error, logPrefix string) {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrEmptyMessage),
		errors.Is(err, models.ErrRatingRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrNotRoomParticipant),
		errors.Is(err, models.ErrNotContractParty):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrInfluencerNotFound),
		errors.Is(err, models.ErrBrandNotFound),
		errors.Is(err, models.ErrProposalNotFound),
		errors.Is(err, models.ErrChatRoomNotFound),
		errors.Is(err, models.ErrContractNotFound),
		errors.Is(err, models.ErrPaymentNotFound),
		errors.Is(err, models.ErrCampaignNotFound),
		errors.Is(err, models.ErrNotificationNotFound),
		errors.Is(err, models.ErrBlogNotFound),
		errors.Is(err, models.ErrNoRecord):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrProposalResolved),
		errors.Is(err, models.ErrProposalNotAccepted),
		errors.Is(err, models.ErrContractNotSigned),
		errors.Is(err, models.ErrAlreadyPaid),
		errors.Is(err, models.ErrAlreadyReviewed),
		errors.Is(err, models.ErrCampaignNotCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidPassword):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	default:
		log.Printf("%s: %v", logPrefix, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
