package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AllenLeeyn/graphql/internal/models"
	"github.com/AllenLeeyn/graphql/internal/platform"
	"github.com/AllenLeeyn/graphql/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func errorRespWithFields(code, message string, fields map[string]string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps the error taxonomy onto HTTP statuses: validation
// before any network call, auth rejections, upstream query failures, and
// transport failures with a generic connectivity message.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		valErr  *session.ValidationError
		authErr *session.UnauthorizedError
		reqErr  *platform.RequestError
		connErr *platform.ConnectivityError
	)

	switch {
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", valErr.Fields, r))
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusUnauthorized, errorResp("UNAUTHORIZED", authErr.Message, r))
	case errors.As(err, &reqErr):
		writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_ERROR", reqErr.Message, r))
	case errors.As(err, &connErr):
		writeJSON(w, http.StatusBadGateway, errorResp("CONNECTION_ERROR", "An error occurred. Please check your connection.", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
