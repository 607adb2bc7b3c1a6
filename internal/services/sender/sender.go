// Package sender отправляет email-напоминания о событиях из очереди RabbitMQ.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/lib/smtp"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// Transport устанавливает SMTP-соединения для отправки писем.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// Service превращает сообщения очереди в письма.
type Service struct {
	transport Transport
	log       *slog.Logger
}

// New создает новый Service.
func New(transport Transport, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// SendEventReminder разбирает сообщение очереди и отправляет участнику
// письмо о событии, которое начинается завтра.
func (s *Service) SendEventReminder(body []byte) error {
	var message models.EventReminder
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal reminder", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := fmt.Sprintf("Reminder: %s is tomorrow", message.EventTitle)
	bodyText := fmt.Sprintf("Hello, %s!\n\nThe event %q at %s starts tomorrow (%s).\n\nSee you there.",
		message.MemberName, message.EventTitle, message.BranchName,
		message.StartsAt.Format("2006-01-02 15:04"))

	return s.sendEmail(to, subject, bodyText)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("reminder email sent", "to", to)
	return nil
}
