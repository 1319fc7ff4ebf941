package repositories

import (
	"context"
	"database/sql"
	"errors"

	"influBack/internal/models"
)

type BrandRepository struct {
	DB *sql.DB
}

func (r *BrandRepository) CreateBrand(ctx context.Context, brand models.Brand) (models.Brand, error) {
	query := `
		INSERT INTO brands (user_id, company_name, contact_person, website, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, brand.UserID, brand.CompanyName, brand.ContactPerson, brand.Website)
	if err != nil {
		return models.Brand{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Brand{}, err
	}
	brand.ID = int(id)
	return brand, nil
}

func (r *BrandRepository) GetBrandByID(ctx context.Context, id int) (models.Brand, error) {
	var brand models.Brand
	query := `SELECT id, user_id, company_name, contact_person, COALESCE(website, ''), created_at, updated_at FROM brands WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&brand.ID, &brand.UserID, &brand.CompanyName, &brand.ContactPerson, &brand.Website, &brand.CreatedAt, &brand.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Brand{}, models.ErrBrandNotFound
	}
	if err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

func (r *BrandRepository) GetBrandByUserID(ctx context.Context, userID int) (models.Brand, error) {
	var brand models.Brand
	query := `SELECT id, user_id, company_name, contact_person, COALESCE(website, ''), created_at, updated_at FROM brands WHERE user_id = ?`
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&brand.ID, &brand.UserID, &brand.CompanyName, &brand.ContactPerson, &brand.Website, &brand.CreatedAt, &brand.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Brand{}, models.ErrBrandNotFound
	}
	if err != nil {
		return models.Brand{}, err
	}
	return brand, nil
}

func (r *BrandRepository) UpdateBrand(ctx context.Context, brand models.Brand) error {
	query := `
		UPDATE brands
		SET company_name = ?, contact_person = ?, website = ?, updated_at = NOW()
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, brand.CompanyName, brand.ContactPerson, brand.Website, brand.ID)
	return err
}
