package handler

import (
	"encoding/json"
	"net/http"

	"club-mareva-site/internal/api"
	"club-mareva-site/internal/logger"
	"club-mareva-site/internal/middleware"
	"club-mareva-site/internal/service"

	"github.com/go-chi/chi/v5"
)

// FormsHandler accepts the two visitor-facing form submissions and relays
// them to the content API.
type FormsHandler struct {
	content *service.ContentService
	log     logger.Logger
}

// NewFormsHandler creates a new FormsHandler.
func NewFormsHandler(cs *service.ContentService, log logger.Logger) *FormsHandler {
	return &FormsHandler{content: cs, log: log}
}

// respondFormError maps service form errors onto HTTP responses: field-level
// validation problems become 422 with per-field messages, anything else a
// generic retry message.
func respondFormError(w http.ResponseWriter, err error) *middleware.AppError {
	if verr, ok := service.AsValidationError(err); ok {
		return respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	return respondJSON(w, http.StatusBadGateway, map[string]string{
		"error": "Something went wrong. Please try again later.",
	})
}

func (h *FormsHandler) submitContact(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var sub api.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		return &middleware.AppError{Err: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	message, err := h.content.SubmitContact(r.Context(), sub)
	if err != nil {
		return respondFormError(w, err)
	}
	return respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *FormsHandler) registerForEvent(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var reg api.EventRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		return &middleware.AppError{Err: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	eventID := chi.URLParam(r, "id")
	message, err := h.content.RegisterForEvent(r.Context(), eventID, reg)
	if err != nil {
		return respondFormError(w, err)
	}
	return respondJSON(w, http.StatusOK, map[string]string{"message": message})
}
