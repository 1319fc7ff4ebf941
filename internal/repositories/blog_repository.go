package repositories

import (
	"context"
	"database/sql"
	"errors"

	"influBack/internal/models"
)

type BlogRepository struct {
	DB *sql.DB
}

func (r *BlogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	query := `
		INSERT INTO blogs (title, summary, content, author_id, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, blog.Title, blog.Summary, blog.Content, blog.AuthorID)
	if err != nil {
		return models.Blog{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Blog{}, err
	}
	blog.ID = int(id)
	return blog, nil
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, id int) (models.Blog, error) {
	var blog models.Blog
	query := `SELECT id, title, COALESCE(summary, ''), content, author_id, created_at, updated_at FROM blogs WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&blog.ID, &blog.Title, &blog.Summary, &blog.Content, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, models.ErrBlogNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

func (r *BlogRepository) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	query := `SELECT id, title, COALESCE(summary, ''), content, author_id, created_at, updated_at FROM blogs ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		var blog models.Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Summary, &blog.Content, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (r *BlogRepository) UpdateBlog(ctx context.Context, blog models.Blog) error {
	query := `UPDATE blogs SET title = ?, summary = ?, content = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, blog.Title, blog.Summary, blog.Content, blog.ID)
	return err
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	return err
}
