package services

import (
	"context"
	"fmt"
	"strings"

	"influBack/internal/models"
)

type MessageStore interface {
	CreateMessage(ctx context.Context, msg models.ChatMessage) (models.ChatMessage, error)
	GetMessagesByRoomID(ctx context.Context, roomID int) ([]models.ChatMessage, error)
}

type RoomStore interface {
	RoomParticipants(ctx context.Context, roomID int) (brandUserID, influencerUserID int, err error)
}

// Broadcaster pushes a stored message to connected room participants.
// Implemented by the websocket hub; nil when the service runs without one.
type Broadcaster interface {
	Deliver(userID int, msg models.ChatMessage)
	IsOnline(userID int) bool
}

type MessageService struct {
	MessageRepo MessageStore
	Rooms       RoomStore
	Notifier    Notifier
	Hub         Broadcaster
}

// SendMessage validates, stores and fans out one chat message. Whitespace-only
// text is rejected before any write, and only room participants may send.
func (s *MessageService) SendMessage(ctx context.Context, senderID, roomID int, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, models.ErrEmptyMessage
	}

	brandUserID, influencerUserID, err := s.Rooms.RoomParticipants(ctx, roomID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if senderID != brandUserID && senderID != influencerUserID {
		return models.ChatMessage{}, models.ErrNotRoomParticipant
	}

	msg, err := s.MessageRepo.CreateMessage(ctx, models.ChatMessage{
		RoomID:   roomID,
		SenderID: senderID,
		Text:     text,
	})
	if err != nil {
		return models.ChatMessage{}, err
	}

	recipient := brandUserID
	if senderID == brandUserID {
		recipient = influencerUserID
	}

	online := false
	if s.Hub != nil {
		online = s.Hub.IsOnline(recipient)
		s.Hub.Deliver(recipient, msg)
		s.Hub.Deliver(senderID, msg)
	}
	if !online && s.Notifier != nil {
		s.Notifier.Notify(ctx, recipient, models.NotificationMessage,
			"New message", fmt.Sprintf("New message in room #%d", roomID))
	}

	return msg, nil
}

func (s *MessageService) GetMessagesForRoom(ctx context.Context, callerUserID, roomID int) ([]models.ChatMessage, error) {
	brandUserID, influencerUserID, err := s.Rooms.RoomParticipants(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if callerUserID != brandUserID && callerUserID != influencerUserID {
		return nil, models.ErrNotRoomParticipant
	}
	return s.MessageRepo.GetMessagesByRoomID(ctx, roomID)
}
