package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	netmail "net/mail"
	"strings"

	"portfolioapi/internal/config"
	"portfolioapi/internal/mail"
	"portfolioapi/internal/model"
)

// ContactReceivedMessage is returned to the visitor once the message has been relayed.
const ContactReceivedMessage = "¡Mensaje recibido! Gracias por contactarme."

var (
	ErrInvalidContact = errors.New("invalid contact request")
	ErrMailDelivery   = errors.New("failed to deliver contact message")
)

// ContactService relays contact form submissions by email.
type ContactService interface {
	// Submit validates req, checks the mail configuration and sends the email.
	// Configuration problems return an error wrapping config.ErrMailNotConfigured
	// without touching the network; transport failures wrap ErrMailDelivery.
	Submit(ctx context.Context, req model.ContactRequest) error
}

type contactService struct {
	cfg    config.MailConfig
	sender mail.Sender
	logger *slog.Logger
}

// NewContactService constructs a ContactService.
func NewContactService(cfg config.MailConfig, sender mail.Sender, logger *slog.Logger) ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactService{cfg: cfg, sender: sender, logger: logger}
}

func (s *contactService) Submit(ctx context.Context, req model.ContactRequest) error {
	req, err := validateContact(req)
	if err != nil {
		return err
	}

	if err := s.cfg.Validate(); err != nil {
		s.logger.Error("contact relay not configured", slog.String("error", err.Error()))
		return err
	}

	msg := composeContactMessage(s.cfg, req)
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("contact message delivery failed",
			slog.String("smtp_host", s.cfg.Host),
			slog.Int("smtp_port", s.cfg.Port),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.logger.Info("contact message relayed", slog.String("from", req.Email))
	return nil
}

func validateContact(req model.ContactRequest) (model.ContactRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return req, fmt.Errorf("%w: %s required", ErrInvalidContact, strings.Join(missing, ", "))
	}
	if _, err := netmail.ParseAddress(req.Email); err != nil {
		return req, fmt.Errorf("%w: email is not a valid address", ErrInvalidContact)
	}
	return req, nil
}

func composeContactMessage(cfg config.MailConfig, req model.ContactRequest) mail.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n\n", req.Email)
	b.WriteString(req.Message)
	b.WriteString("\n")

	return mail.Message{
		From:    cfg.Sender(),
		To:      cfg.To,
		ReplyTo: req.Email,
		Subject: "New contact message from " + req.Name,
		Body:    b.String(),
	}
}
