package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"rudresh.dev/internal/models"
	"rudresh.dev/internal/services"
)

const contactThanks = "Thank you! I will get back to you soon."

// maxContactBytes bounds contact form bodies
const maxContactBytes = 64 << 10

// ContactHandler accepts contact form submissions
type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: logger}
}

// Submit handles POST /api/contact. JSON and form bodies are accepted;
// htmx requests get an HTML fragment back.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBytes)

	var msg models.ContactMessage
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid form body")
			return
		}
		msg = models.ContactMessage{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Message: r.PostForm.Get("message"),
		}
	}

	id, err := h.contactService.Submit(msg)
	if errors.Is(err, services.ErrIncompleteMessage) {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		render(w, h.logger, http.StatusOK, "contact.html", map[string]string{"ID": id, "Message": contactThanks})
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]string{"id": id, "message": contactThanks})
}
