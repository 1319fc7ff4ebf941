package services

import (
	"context"

	"influBack/internal/models"
	"influBack/internal/repositories"
)

type ChatService struct {
	ChatRepo *repositories.ChatRepository
}

func (s *ChatService) GetRoomByID(ctx context.Context, callerUserID, roomID int) (models.ChatRoom, error) {
	brandUserID, influencerUserID, err := s.ChatRepo.RoomParticipants(ctx, roomID)
	if err != nil {
		return models.ChatRoom{}, err
	}
	if callerUserID != brandUserID && callerUserID != influencerUserID {
		return models.ChatRoom{}, models.ErrNotRoomParticipant
	}
	return s.ChatRepo.GetRoomByID(ctx, roomID)
}

func (s *ChatService) GetRoomByProposalID(ctx context.Context, proposalID int) (models.ChatRoom, error) {
	return s.ChatRepo.GetRoomByProposalID(ctx, proposalID)
}

func (s *ChatService) GetRoomsForUser(ctx context.Context, userID int) ([]models.ChatRoom, error) {
	return s.ChatRepo.GetRoomsForUser(ctx, userID)
}
