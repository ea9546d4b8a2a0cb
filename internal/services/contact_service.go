package services

import (
	"context"
	"fmt"

	"patitas_backend/internal/config"
	"patitas_backend/internal/email"
	"patitas_backend/internal/logger"
	"patitas_backend/internal/models"
	"patitas_backend/internal/repositories"
	"patitas_backend/internal/services/dto"
	"patitas_backend/pkg/apperrors"
)

type ContactService interface {
	Submit(ctx context.Context, form *dto.ContactForm) error
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
	sender      email.Sender
	adminEmail  string
}

func NewContactService(contactRepo repositories.ContactRepository, sender email.Sender, cfg *config.Config) ContactService {
	return &ContactServiceImpl{
		contactRepo: contactRepo,
		sender:      sender,
		adminEmail:  cfg.Email.AdminEmail,
	}
}

// Submit stores the message and then tries to notify the site admin by
// mail. The message is committed first; a mail failure is logged, never
// surfaced to the visitor.
func (s *ContactServiceImpl) Submit(ctx context.Context, form *dto.ContactForm) error {
	msg := &models.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Subject: form.Subject,
		Body:    form.Message,
	}
	if err := s.contactRepo.Create(msg); err != nil {
		return apperrors.InternalError(err)
	}

	if s.sender != nil && s.sender.Configured() && s.adminEmail != "" {
		body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body)
		subject := msg.Subject
		if subject == "" {
			subject = "New contact message"
		}
		if err := s.sender.Send(s.adminEmail, subject, body); err != nil {
			logger.CtxWarn(ctx, "failed to send contact notification", "message_id", msg.ID, "error", err.Error())
		}
	}
	return nil
}
