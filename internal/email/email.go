package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"airline-ticketing/internal/kafka"
	"airline-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// Sender dispatches purchase confirmation emails. Without SMTP configuration
// it logs the message instead, which is enough for development.
type Sender struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func NewSender(config utils.EmailConfig, log *zap.Logger) *Sender {
	return &Sender{
		config: config,
		log:    log.With(zap.String("component", "email")),
	}
}

func (s *Sender) SendPurchaseConfirmation(ctx context.Context, event kafka.TicketPurchasedEvent) error {
	subject := fmt.Sprintf("Ticket confirmation for flight %s", event.FlightNumber)
	body := fmt.Sprintf(
		"Your ticket is confirmed.\n\nFlight: %s\nSeat: %s\nClass: %s\nDeparture: %s\nTotal: %.2f\n",
		event.FlightNumber,
		event.SeatNumber,
		event.ClassName,
		event.DepartureTime.Format("2006-01-02 15:04"),
		event.TotalCost,
	)

	if s.config.Host == "" {
		s.log.Info("SMTP not configured, logging confirmation instead",
			zap.String("to", event.Email),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", s.config.From),
		fmt.Sprintf("To: %s", event.Email),
		fmt.Sprintf("Subject: %s", subject),
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.From, []string{event.Email}, []byte(msg)); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err),
			zap.String("to", event.Email),
		)
		return fmt.Errorf("send confirmation email to %s: %w", event.Email, err)
	}

	s.log.Info("Confirmation email sent",
		zap.String("to", event.Email),
		zap.String("ticket_id", event.TicketID),
	)

	return nil
}
