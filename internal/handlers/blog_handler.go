package handlers

import (
	"encoding/json"
	"net/http"

	"influBack/internal/models"
	"influBack/internal/services"
)

type BlogHandler struct {
	Service *services.BlogService
}

func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var blog models.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateBlog(r.Context(), blog)
	if err != nil {
		serviceError(w, err, "CreateBlog")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	blog, err := h.Service.GetBlogByID(r.Context(), id)
	if err != nil {
		serviceError(w, err, "GetBlogByID")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Service.GetBlogs(r.Context())
	if err != nil {
		serviceError(w, err, "GetBlogs")
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	var blog models.Blog
	if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	blog.ID = id
	if err := h.Service.UpdateBlog(r.Context(), blog); err != nil {
		serviceError(w, err, "UpdateBlog")
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid blog ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteBlog(r.Context(), id); err != nil {
		serviceError(w, err, "DeleteBlog")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
