package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rudresh.dev/internal/models"
)

// ErrIncompleteMessage is returned when a contact form field is blank
var ErrIncompleteMessage = errors.New("name, email and message are required")

// ContactService accepts contact form submissions. Submissions are only
// logged; nothing is stored or forwarded.
type ContactService struct {
	logger *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(logger *zap.Logger) *ContactService {
	return &ContactService{logger: logger}
}

// Submit records msg and returns its submission id
func (s *ContactService) Submit(msg models.ContactMessage) (string, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return "", ErrIncompleteMessage
	}

	id := uuid.NewString()
	s.logger.Info("Contact form submitted",
		zap.String("id", id),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.Int("message_len", len(msg.Message)))
	return id, nil
}
