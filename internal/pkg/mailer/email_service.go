package mailer

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactMessage(name, email, message string) error
	SendChatLead(topic, lastMessage string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	inboxEmail  string
}

// NewEmailService delivers contact form submissions and chatbot leads
// to the site inbox.
func NewEmailService(host string, port int, username, password, senderEmail, inboxEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		inboxEmail:  inboxEmail,
	}
}

func (s *emailService) SendContactMessage(name, email, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.inboxEmail)
	m.SetHeader("Reply-To", email)
	m.SetHeader("Subject", fmt.Sprintf("Nieuw contactformulier bericht van %s", name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Nieuw bericht via het contactformulier</h2>
			<p><strong>Naam:</strong> %s</p>
			<p><strong>E-mail:</strong> %s</p>
			<p><strong>Bericht:</strong></p>
			<p style="white-space: pre-wrap; background: #f5f5f5; padding: 12px; border-radius: 5px;">%s</p>
		</div>
	`, html.EscapeString(name), html.EscapeString(email), html.EscapeString(message))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}

// SendChatLead notifies the inbox that the chatbot hit one of its email
// triggers (demo, quote, integration). The visitor's address is not
// known at this point; the last message gives the team context.
func (s *emailService) SendChatLead(topic, lastMessage string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.inboxEmail)
	m.SetHeader("Subject", "Nieuwe lead via de Timo chatbot")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>De chatbot heeft een lead gesignaleerd</h2>
			<p><strong>Onderwerp:</strong> %s</p>
			<p><strong>Laatste bericht van bezoeker:</strong></p>
			<p style="white-space: pre-wrap; background: #f5f5f5; padding: 12px; border-radius: 5px;">%s</p>
		</div>
	`, html.EscapeString(topic), html.EscapeString(lastMessage))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send chat lead: %w", err)
	}
	return nil
}
