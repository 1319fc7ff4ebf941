package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"influBack/internal/models"
	"influBack/internal/repositories"
	"influBack/utils"
)

type ContactService struct {
	ContactRepo *repositories.ContactRepository
	Email       *utils.EmailSender // nil when SMTP is not configured
}

// CreateContactRequest stores the inquiry and sends an acknowledgement mail
// when SMTP is configured. The mail is best effort.
func (s *ContactService) CreateContactRequest(ctx context.Context, req models.ContactRequest) (models.ContactRequest, error) {
	if strings.TrimSpace(req.ContactPerson) == "" || strings.TrimSpace(req.Email) == "" {
		return models.ContactRequest{}, fmt.Errorf("%w: contact person and email are required", models.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return models.ContactRequest{}, fmt.Errorf("%w: message is required", models.ErrInvalidInput)
	}

	created, err := s.ContactRepo.CreateContactRequest(ctx, req)
	if err != nil {
		return models.ContactRequest{}, err
	}

	if s.Email != nil {
		body := fmt.Sprintf("<p>Hi %s,</p><p>We received your inquiry and will get back to you shortly.</p>", created.ContactPerson)
		if err := s.Email.Send(created.Email, "We received your inquiry", body); err != nil {
			log.Printf("contact acknowledgement mail to %s failed: %v", created.Email, err)
		}
	}
	return created, nil
}

func (s *ContactService) GetContactRequests(ctx context.Context) ([]models.ContactRequest, error) {
	return s.ContactRepo.GetContactRequests(ctx)
}
