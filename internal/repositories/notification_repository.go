package repositories

import (
	"context"
	"database/sql"

	"influBack/internal/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	query := "INSERT INTO notifications (user_id, type, title, message, `read`, created_at) VALUES (?, ?, ?, ?, FALSE, NOW())"
	result, err := r.DB.ExecContext(ctx, query, n.UserID, n.Type, n.Title, n.Message)
	if err != nil {
		return models.Notification{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Notification{}, err
	}
	n.ID = int(id)
	return n, nil
}

func (r *NotificationRepository) GetNotificationsByUserID(ctx context.Context, userID int) ([]models.Notification, error) {
	query := "SELECT id, user_id, type, title, message, `read`, created_at FROM notifications WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE notifications SET `read` = TRUE WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications WHERE user_id = ? AND `read` = FALSE", userID).Scan(&count)
	return count, err
}
