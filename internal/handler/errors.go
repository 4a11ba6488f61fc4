package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"socialmedia/internal/models"
)

// ErrorResponse is the single-field error envelope returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteAppError maps service error kinds to HTTP statuses. Unclassified
// errors are reported as a generic 500 without internal detail.
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		log.Printf("unexpected error: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case models.KindInvalidInput:
		status = http.StatusBadRequest
	case models.KindNotFound:
		status = http.StatusNotFound
	case models.KindConflict:
		status = http.StatusConflict
	case models.KindUnauthorized:
		status = http.StatusUnauthorized
	case models.KindInternal:
		log.Printf("internal error: %v", appErr)
	}

	WriteError(w, appErr.Message, status)
}
