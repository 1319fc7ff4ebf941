package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"influBack/internal/models"
	"influBack/internal/repositories"
)

// Notifier is the slice of NotificationService the workflow services use.
type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, message string)
}

type NotificationService struct {
	NotificationRepo *repositories.NotificationRepository
	UserRepo         *repositories.UserRepository
	FCMClient        *messaging.Client // nil when push is not configured
}

// Notify stores the notification and, when the user has a registered device
// token and push is configured, sends it via FCM. Delivery problems are
// logged and swallowed: a failed push must never fail the workflow write
// that triggered it.
func (s *NotificationService) Notify(ctx context.Context, userID int, kind, title, message string) {
	n := models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	}
	if _, err := s.NotificationRepo.CreateNotification(ctx, n); err != nil {
		log.Printf("notification insert failed for user %d: %v", userID, err)
		return
	}

	if s.FCMClient == nil {
		return
	}
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil || user.FCMToken == "" {
		return
	}
	_, err = s.FCMClient.Send(ctx, &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
	})
	if err != nil {
		log.Printf("fcm push failed for user %d: %v", userID, err)
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID int) ([]models.Notification, error) {
	return s.NotificationRepo.GetNotificationsByUserID(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int) error {
	return s.NotificationRepo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int) (int, error) {
	return s.NotificationRepo.UnreadCount(ctx, userID)
}

func (s *NotificationService) RegisterFCMToken(ctx context.Context, userID int, token string) error {
	return s.UserRepo.UpdateFCMToken(ctx, userID, token)
}
