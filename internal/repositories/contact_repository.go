package repositories

import (
	"context"
	"database/sql"

	"influBack/internal/models"
)

type ContactRepository struct {
	DB *sql.DB
}

func (r *ContactRepository) CreateContactRequest(ctx context.Context, req models.ContactRequest) (models.ContactRequest, error) {
	query := `
		INSERT INTO contact_requests (budget, category, link, contact_person, phone, email, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		req.Budget, req.Category, req.Link, req.ContactPerson, req.Phone, req.Email, req.Message,
	)
	if err != nil {
		return models.ContactRequest{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.ContactRequest{}, err
	}
	req.ID = int(id)
	return req, nil
}

func (r *ContactRepository) GetContactRequests(ctx context.Context) ([]models.ContactRequest, error) {
	query := `
		SELECT id, budget, category, COALESCE(link, ''), contact_person, phone, email, message, created_at
		FROM contact_requests
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.ContactRequest{}
	for rows.Next() {
		var req models.ContactRequest
		err := rows.Scan(&req.ID, &req.Budget, &req.Category, &req.Link, &req.ContactPerson, &req.Phone, &req.Email, &req.Message, &req.CreatedAt)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
