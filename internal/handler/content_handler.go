package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"club-mareva-site/internal/logger"
	"club-mareva-site/internal/middleware"
	"club-mareva-site/internal/service"

	"github.com/go-chi/chi/v5"
)

// defaultLatestCount matches the landing page's latest-activity feed size.
const defaultLatestCount = 6

// ContentHandler serves the canonical content objects as JSON.
type ContentHandler struct {
	content *service.ContentService
	log     logger.Logger
}

// NewContentHandler creates a new ContentHandler with the given dependencies.
func NewContentHandler(cs *service.ContentService, log logger.Logger) *ContentHandler {
	return &ContentHandler{content: cs, log: log}
}

// respondJSON writes v as a JSON response body.
func respondJSON(w http.ResponseWriter, code int, v interface{}) *middleware.AppError {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to encode response", Code: http.StatusInternalServerError}
	}
	return nil
}

func (h *ContentHandler) listPosts(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if category := r.URL.Query().Get("category"); category != "" {
		return respondJSON(w, http.StatusOK, h.content.GetPostsByCategory(r.Context(), category))
	}
	return respondJSON(w, http.StatusOK, h.content.GetAllPosts(r.Context()))
}

func (h *ContentHandler) latestPosts(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	count := defaultLatestCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed <= 0 {
			return &middleware.AppError{Err: err, Message: "Invalid 'count' parameter", Code: http.StatusBadRequest}
		}
		count = parsed
	}
	return respondJSON(w, http.StatusOK, h.content.GetLatestPosts(r.Context(), count))
}

func (h *ContentHandler) postBySlug(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	slug := chi.URLParam(r, "slug")
	post, err := h.content.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return &middleware.AppError{Err: err, Message: "Post not found", Code: http.StatusNotFound}
		}
		return &middleware.AppError{Err: err, Message: "Failed to retrieve post", Code: http.StatusInternalServerError}
	}
	return respondJSON(w, http.StatusOK, post)
}

func (h *ContentHandler) listEvents(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetUpcomingEvents(r.Context()))
}

func (h *ContentHandler) eventSlugs(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetAllUpcomingEventSlugs(r.Context()))
}

func (h *ContentHandler) eventBySlug(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	slug := chi.URLParam(r, "slug")
	event, err := h.content.GetUpcomingEventBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return &middleware.AppError{Err: err, Message: "Event not found", Code: http.StatusNotFound}
		}
		return &middleware.AppError{Err: err, Message: "Failed to retrieve event", Code: http.StatusInternalServerError}
	}
	return respondJSON(w, http.StatusOK, event)
}

func (h *ContentHandler) listPages(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetAllPages(r.Context()))
}

func (h *ContentHandler) pageBySlug(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	slug := chi.URLParam(r, "slug")
	page, err := h.content.GetPageBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return &middleware.AppError{Err: err, Message: "Page not found", Code: http.StatusNotFound}
		}
		return &middleware.AppError{Err: err, Message: "Failed to retrieve page", Code: http.StatusInternalServerError}
	}
	return respondJSON(w, http.StatusOK, page)
}

func (h *ContentHandler) listBrands(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetBrands(r.Context()))
}

func (h *ContentHandler) showcaseBrands(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetShowcaseBrands(r.Context()))
}

func (h *ContentHandler) brandByID(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")
	brand, err := h.content.GetBrandByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return &middleware.AppError{Err: err, Message: "Brand not found", Code: http.StatusNotFound}
		}
		return &middleware.AppError{Err: err, Message: "Failed to retrieve brand", Code: http.StatusInternalServerError}
	}
	return respondJSON(w, http.StatusOK, brand)
}

func (h *ContentHandler) listCategories(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetCategories(r.Context()))
}

func (h *ContentHandler) listAuthors(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetAuthors(r.Context()))
}

func (h *ContentHandler) listSignatures(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return respondJSON(w, http.StatusOK, h.content.GetSignatures(r.Context()))
}

func (h *ContentHandler) clearCache(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	h.content.ClearCache()
	return respondJSON(w, http.StatusOK, map[string]string{"message": "cache cleared"})
}
