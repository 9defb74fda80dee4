package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/service"
	"github.com/vedran77/quill/internal/transport/http/middleware"
	"github.com/vedran77/quill/pkg/validator"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogService.List(r.Context())
	if err != nil {
		slog.Error("list blogs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if blogs == nil {
		blogs = []domain.Blog{}
	}
	writeJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var input service.CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	// Required fields are checked before any store interaction.
	if errs := validator.ValidateNewBlog(input.Title, input.URL); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	blog, err := h.blogService.Create(r.Context(), user, input)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "token missing")
		} else {
			slog.Error("create blog failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, blog)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "malformatted id")
		return
	}

	var input service.UpdateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	blog, err := h.blogService.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "blog not found")
		} else {
			slog.Error("update blog failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, blog)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "malformatted id")
		return
	}

	user := middleware.UserFromContext(r.Context())

	if err := h.blogService.Delete(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "token missing")
		case errors.Is(err, service.ErrNotBlogOwner):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "only the owner can delete a blog")
		default:
			slog.Error("delete blog failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.blogService.Stats(r.Context())
	if err != nil {
		slog.Error("blog stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
