package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/JaniDhruv/EduResolve/middleware"
	"github.com/JaniDhruv/EduResolve/models"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("[handler] failed to encode response: %v", err)
		}
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, errorType, message string) {
	respondWithJSON(w, statusCode, ErrorResponse{
		Error:   errorType,
		Message: message,
		Code:    statusCode,
	})
}

// respondWithServiceError maps the service error taxonomy onto HTTP codes.
// Validation failures are 400, denied access is 403, missing rows are 404
// and anything else is a 500 with the detail kept out of the response.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		respondWithError(w, http.StatusBadRequest, "Validation error", err.Error())
	case errors.Is(err, models.ErrAccessDenied):
		respondWithError(w, http.StatusForbidden, "Forbidden", "You do not have access to this resource.")
	case errors.Is(err, models.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found", "The requested resource does not exist.")
	default:
		log.Printf("[handler] internal error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal error", "Something went wrong. Please try again.")
	}
}

func actorFromRequest(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context.")
		return nil, false
	}
	return actor, true
}
