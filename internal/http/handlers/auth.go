package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/weiliang-c/account-be/internal/auth"
	"github.com/weiliang-c/account-be/internal/http/respond"
	"github.com/weiliang-c/account-be/internal/middleware"
	"github.com/weiliang-c/account-be/internal/models/dto"
	"github.com/weiliang-c/account-be/internal/users"
)

// AuthHandler owns the login and current-user endpoints.
type AuthHandler struct {
	auth   *auth.Service
	users  *users.Service
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authSvc *auth.Service, userSvc *users.Service, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{auth: authSvc, users: userSvc, tokens: tokens}
}

// Register attaches auth routes to the mux. /auth/me sits behind the bearer
// guard.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/login", h.handleLogin)
	mux.Handle("GET /auth/me", middleware.RequireAuth(h.tokens, http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := h.auth.SignIn(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.LoginResponse{AccessToken: token})
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}
	id, err := claims.UserID()
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid token")
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}
