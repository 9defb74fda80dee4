package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/service"
	"github.com/vedran77/quill/pkg/validator"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateNewUser(input.Username, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "expected `username` to be unique")
		} else {
			slog.Error("create user failed", "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if users == nil {
		users = []domain.User{}
	}
	writeJSON(w, http.StatusOK, users)
}
