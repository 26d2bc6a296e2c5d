package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AllenLeeyn/graphql/internal/metrics"
	"github.com/AllenLeeyn/graphql/internal/middleware"
	"github.com/AllenLeeyn/graphql/internal/models"
	"github.com/AllenLeeyn/graphql/internal/session"
)

type AuthHandler struct {
	sessions *session.Manager
	metrics  *metrics.Manager
}

func NewAuthHandler(sessions *session.Manager, metrics *metrics.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions, metrics: metrics}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	sess, err := h.sessions.Login(r.Context(), req.Identifier, req.Secret)
	if err != nil {
		h.metrics.RecordLogin(false)
		handleServiceError(w, r, err)
		return
	}

	h.metrics.RecordLogin(true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Log in successful!",
		"session_id": sess.ID,
		"expires_at": sess.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.GetSessionID(r.Context())
	h.sessions.Logout(r.Context(), sessionID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Log out successful!"})
}
