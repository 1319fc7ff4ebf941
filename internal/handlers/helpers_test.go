package handlers

import (
	"net/http/httptest"
	"testing"

	"influBack/internal/models"
)

func TestServiceErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{models.ErrInvalidInput, 400},
		{models.ErrEmptyMessage, 400},
		{models.ErrRatingRequired, 400},
		{models.ErrForbidden, 403},
		{models.ErrNotRoomParticipant, 403},
		{models.ErrNotContractParty, 403},
		{models.ErrProposalNotFound, 404},
		{models.ErrContractNotFound, 404},
		{models.ErrCampaignNotFound, 404},
		{models.ErrProposalResolved, 409},
		{models.ErrProposalNotAccepted, 409},
		{models.ErrContractNotSigned, 409},
		{models.ErrAlreadyPaid, 409},
		{models.ErrAlreadyReviewed, 409},
		{models.ErrCampaignNotCompleted, 409},
		{models.ErrInvalidPassword, 401},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		serviceError(rec, tc.err, "test")
		if rec.Code != tc.want {
			t.Fatalf("%v: expected status %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestGetParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/proposals?:id=7", nil)
	if got := getParam(r, "id"); got != "7" {
		t.Fatalf("colon-prefixed param: expected 7, got %q", got)
	}

	r = httptest.NewRequest("GET", "/proposals?id=9", nil)
	n, err := intParam(r, "id")
	if err != nil || n != 9 {
		t.Fatalf("plain query param: expected 9, got %d (%v)", n, err)
	}

	r = httptest.NewRequest("GET", "/proposals?id=abc", nil)
	if _, err := intParam(r, "id"); err == nil {
		t.Fatal("expected error for non-numeric param")
	}
}
