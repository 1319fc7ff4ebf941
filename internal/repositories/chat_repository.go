package repositories

import (
	"context"
	"database/sql"
	"errors"

	"influBack/internal/models"
)

type ChatRepository struct {
	DB *sql.DB
}

const chatRoomSelect = `
	SELECT cr.id, cr.brand_id, cr.influencer_id, cr.proposal_id, cr.created_at,
	       p.campaign_name, b.company_name, i.channel_name
	FROM chat_rooms cr
	JOIN proposals p ON cr.proposal_id = p.id
	JOIN brands b ON cr.brand_id = b.id
	JOIN influencers i ON cr.influencer_id = i.id
`

func (r *ChatRepository) scanRoom(row *sql.Row) (models.ChatRoom, error) {
	var room models.ChatRoom
	err := row.Scan(
		&room.ID, &room.BrandID, &room.InfluencerID, &room.ProposalID, &room.CreatedAt,
		&room.CampaignName, &room.CompanyName, &room.ChannelName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatRoom{}, models.ErrChatRoomNotFound
	}
	if err != nil {
		return models.ChatRoom{}, err
	}
	return room, nil
}

func (r *ChatRepository) GetRoomByID(ctx context.Context, id int) (models.ChatRoom, error) {
	row := r.DB.QueryRowContext(ctx, chatRoomSelect+` WHERE cr.id = ?`, id)
	return r.scanRoom(row)
}

func (r *ChatRepository) GetRoomByProposalID(ctx context.Context, proposalID int) (models.ChatRoom, error) {
	row := r.DB.QueryRowContext(ctx, chatRoomSelect+` WHERE cr.proposal_id = ?`, proposalID)
	return r.scanRoom(row)
}

func (r *ChatRepository) GetRoomsForUser(ctx context.Context, userID int) ([]models.ChatRoom, error) {
	query := chatRoomSelect + `
		WHERE b.user_id = ? OR i.user_id = ?
		ORDER BY cr.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []models.ChatRoom{}
	for rows.Next() {
		var room models.ChatRoom
		err := rows.Scan(
			&room.ID, &room.BrandID, &room.InfluencerID, &room.ProposalID, &room.CreatedAt,
			&room.CampaignName, &room.CompanyName, &room.ChannelName,
		)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// RoomParticipants returns the user ids of both room parties.
func (r *ChatRepository) RoomParticipants(ctx context.Context, roomID int) (brandUserID, influencerUserID int, err error) {
	query := `
		SELECT b.user_id, i.user_id
		FROM chat_rooms cr
		JOIN brands b ON cr.brand_id = b.id
		JOIN influencers i ON cr.influencer_id = i.id
		WHERE cr.id = ?
	`
	err = r.DB.QueryRowContext(ctx, query, roomID).Scan(&brandUserID, &influencerUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, models.ErrChatRoomNotFound
	}
	return brandUserID, influencerUserID, err
}
