package handler

import (
	"encoding/json"
	"net/http"

	"prontuario/internal/api/request"
	"prontuario/internal/api/response"
	"prontuario/internal/services/users"
)

// UserHandler handles credential management endpoints. Routes using it are
// admin-gated by middleware.
type UserHandler struct {
	userService *users.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *users.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.userService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserList{Usernames: names})
}

// Add handles POST /api/v1/users
func (h *UserHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.userService.Add(r.Context(), req.Username, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{"username": req.Username})
}
