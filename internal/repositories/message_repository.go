package repositories

import (
	"context"
	"database/sql"
	"time"

	"influBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg models.ChatMessage) (models.ChatMessage, error) {
	msg.CreatedAt = time.Now()
	query := `
		INSERT INTO chat_messages (room_id, sender_id, text, created_at)
		VALUES (?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query, msg.RoomID, msg.SenderID, msg.Text, msg.CreatedAt)
	if err != nil {
		return models.ChatMessage{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.ChatMessage{}, err
	}
	msg.ID = int(id)
	return msg, nil
}

// GetMessagesByRoomID returns the room history in send order. The id tiebreak
// keeps messages with equal timestamps stable.
func (r *MessageRepository) GetMessagesByRoomID(ctx context.Context, roomID int) ([]models.ChatMessage, error) {
	query := `
		SELECT id, room_id, sender_id, text, created_at
		FROM chat_messages
		WHERE room_id = ?
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.RoomID, &msg.SenderID, &msg.Text, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
