package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/EnriqueBarroso/timbiriche-cuba-sub000/internal/models"
)

// Mailer delivers a contact-form message to the site operators.
type Mailer interface {
	Send(ctx context.Context, name, email, message string) error
}

// ContactService validates and forwards contact-form submissions.
type ContactService struct {
	mailer Mailer
}

// ContactInput is a raw contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// NewContactService creates a new contact service.
func NewContactService(mailer Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

func (s *ContactService) Submit(ctx context.Context, in ContactInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" || email == "" || message == "" {
		return models.NewValidationError("Name, email and message are all required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.NewValidationError("Invalid email address")
	}

	return s.mailer.Send(ctx, name, email, message)
}
