package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/weiliang-c/account-be/internal/auth"
	"github.com/weiliang-c/account-be/internal/http/respond"
	"github.com/weiliang-c/account-be/internal/storage"
)

// writeServiceError maps service-layer failures onto HTTP statuses:
// conflict 409, not found 404, bad credentials or token 401, the rest 500
// with a generic message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, "email is already in use")
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, auth.ErrInvalidCredentials):
		respond.Error(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		respond.Error(w, http.StatusUnauthorized, "invalid token")
	default:
		slog.Error("unexpected service error", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}
