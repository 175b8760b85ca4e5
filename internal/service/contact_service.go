package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timo-intelligence-be/internal/content"
	"timo-intelligence-be/internal/dto"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/pkg/mailer"

	"github.com/patrickmn/go-cache"
)

const (
	contactRateLimit  = 5
	contactRateWindow = time.Minute

	contactNameMax    = 100
	contactMessageMin = 10
	contactMessageMax = 5000
)

var ErrTooManyMessages = errors.New("too many messages, try again in a minute")

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest, ipAddress string) error
}

type contactService struct {
	mail  mailer.IEmailService
	rates *cache.Cache
	log   logger.ILogger
}

func NewContactService(mail mailer.IEmailService, log logger.ILogger) IContactService {
	return &contactService{
		mail:  mail,
		rates: cache.New(contactRateWindow, 30*time.Second),
		log:   log,
	}
}

// Submit sanitizes and forwards a contact form message. Each client IP
// gets five submissions per rolling minute.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest, ipAddress string) error {
	rateKey := "contact:" + ipAddress
	if count, found := s.rates.Get(rateKey); found && count.(int) >= contactRateLimit {
		s.log.Warn("Contact", "Submission rate limited", map[string]interface{}{"ip": ipAddress})
		return ErrTooManyMessages
	}

	name := content.SanitizeText(req.Name, contactNameMax)
	message := content.SanitizeText(req.Message, contactMessageMax)

	if name == "" {
		return errors.New("name is required")
	}
	if len([]rune(message)) < contactMessageMin {
		return fmt.Errorf("message must be at least %d characters", contactMessageMin)
	}

	if _, err := s.rates.IncrementInt(rateKey, 1); err != nil {
		s.rates.Set(rateKey, 1, contactRateWindow)
	}

	if err := s.mail.SendContactMessage(name, req.Email, message); err != nil {
		s.log.Error("Contact", "Failed to deliver contact message", map[string]interface{}{"error": err.Error()})
		return errors.New("failed to deliver message, try again later")
	}

	s.log.Info("Contact", "Contact message delivered", map[string]interface{}{"ip": ipAddress})
	return nil
}
