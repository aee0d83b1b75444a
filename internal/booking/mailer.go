package booking

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/rollinggrill/streetside/internal/config"
)

var ErrMailNotConfigured = errors.New("mail transport not configured")

// Mailer delivers booking-request notifications to the operators.
type Mailer interface {
	Configured() bool
	SendBookingNotice(request *Request) error
}

type smtpMailer struct {
	config *config.MailConfig
	log    *zap.Logger
}

func NewMailer(config *config.MailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		config: config,
		log:    log,
	}
}

func (m *smtpMailer) Configured() bool {
	return m.config.Configured()
}

func (m *smtpMailer) SendBookingNotice(request *Request) error {
	if !m.Configured() {
		return ErrMailNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", m.config.BookingRecipient)
	msg.SetHeader("Subject", fmt.Sprintf("Booking request: %s on %s", request.Town, request.Date))
	if request.Email != "" {
		msg.SetHeader("Reply-To", request.Email)
	}
	msg.SetBody("text/plain", bookingNoticeBody(request))

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.Username, m.config.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send booking notice: %w", err)
	}

	m.log.Info("booking notice sent",
		zap.String("town", request.Town),
		zap.String("date", request.Date))

	return nil
}

func bookingNoticeBody(request *Request) string {
	return fmt.Sprintf(
		"New booking request\n\n"+
			"Name:    %s\n"+
			"Email:   %s\n"+
			"Phone:   %s\n"+
			"Town:    %s\n"+
			"Address: %s\n"+
			"Date:    %s\n"+
			"Time:    %s - %s\n\n"+
			"%s\n",
		request.Name,
		request.Email,
		request.Phone,
		request.Town,
		request.Address,
		request.Date,
		request.StartTime,
		request.EndTime,
		request.Details,
	)
}
