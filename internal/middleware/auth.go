package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/AllenLeeyn/graphql/internal/session"
)

type contextKey string

const (
	TokenKey     contextKey = "platform_token"
	SessionIDKey contextKey = "session_id"
)

// SessionAuth resolves the bearer session id to a still-valid platform token
// and attaches it to the request context. It is the LoggedIn/LoggedOut gate:
// an expired or unknown session drops the request back to 401.
type SessionAuth struct {
	sessions *session.Manager
}

func NewSessionAuth(sessions *session.Manager) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

func (s *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing authorization header", r)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authorization format", r)
			return
		}

		sessionID := parts[1]
		token, err := s.sessions.Token(r.Context(), sessionID)
		if err != nil {
			var authErr *session.UnauthorizedError
			if errors.As(err, &authErr) {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", authErr.Message, r)
			} else {
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Session lookup failed", r)
			}
			return
		}

		ctx := context.WithValue(r.Context(), TokenKey, token)
		ctx = context.WithValue(ctx, SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetToken extracts the platform token from the request context.
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}

// GetSessionID extracts the session id from the request context.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

func writeError(w http.ResponseWriter, status int, code, message string, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"code":       code,
			"message":    message,
			"request_id": requestID,
		},
	})
}
