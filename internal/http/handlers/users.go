package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/weiliang-c/account-be/internal/http/respond"
	"github.com/weiliang-c/account-be/internal/models/dto"
	"github.com/weiliang-c/account-be/internal/users"
)

// UsersHandler owns the user CRUD endpoints.
type UsersHandler struct {
	users *users.Service
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(userSvc *users.Service) *UsersHandler {
	return &UsersHandler{users: userSvc}
}

// Register attaches user routes to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /users", h.handleCreate)
	mux.HandleFunc("GET /users", h.handleList)
	mux.HandleFunc("GET /users/{id}", h.handleGet)
	mux.HandleFunc("PATCH /users/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /users/{id}", h.handleDelete)
}

func (h *UsersHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		respond.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "password is required")
		return
	}

	created, err := h.users.Create(r.Context(), users.CreateParams{
		Email:       email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Country:     req.Country,
		State:       req.State,
		City:        req.City,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, created)
}

func (h *UsersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.users.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, all)
}

func (h *UsersHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UsersHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	updated, err := h.users.Update(r.Context(), id, users.UpdateParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Country:     req.Country,
		State:       req.State,
		City:        req.City,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (h *UsersHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.users.Remove(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}
