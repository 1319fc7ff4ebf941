package services

import (
	"context"
	"fmt"
	"strings"

	"influBack/internal/models"
	"influBack/internal/repositories"
)

type BlogService struct {
	BlogRepo *repositories.BlogRepository
}

func (s *BlogService) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if strings.TrimSpace(blog.Title) == "" || strings.TrimSpace(blog.Content) == "" {
		return models.Blog{}, fmt.Errorf("%w: title and content are required", models.ErrInvalidInput)
	}
	return s.BlogRepo.CreateBlog(ctx, blog)
}

func (s *BlogService) GetBlogByID(ctx context.Context, id int) (models.Blog, error) {
	return s.BlogRepo.GetBlogByID(ctx, id)
}

func (s *BlogService) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.BlogRepo.GetBlogs(ctx)
}

func (s *BlogService) UpdateBlog(ctx context.Context, blog models.Blog) error {
	return s.BlogRepo.UpdateBlog(ctx, blog)
}

func (s *BlogService) DeleteBlog(ctx context.Context, id int) error {
	return s.BlogRepo.DeleteBlog(ctx, id)
}
