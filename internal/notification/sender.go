package notification

import (
	"context"

	"go-attendance/internal/shared/apperror"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dialer is the part of gomail.Dialer the SMTP sender needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpSender struct {
	dialer Dialer
	from   string
	logger *zap.Logger
}

func NewSMTPSender(cfg SMTPConfig, logger ...*zap.Logger) Sender {
	return NewSenderWithDialer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, logger...)
}

func NewSenderWithDialer(dialer Dialer, from string, logger ...*zap.Logger) Sender {
	l := zap.L().Named("notification.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.smtp")
	}
	return &smtpSender{dialer: dialer, from: from, logger: l}
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return apperror.ExternalDependency("mail relay", err)
	}
	s.logger.Info("email sent", zap.String("to", msg.To), zap.String("kind", msg.Kind))
	return nil
}

type logSender struct {
	logger *zap.Logger
}

// NewLogSender is used when no SMTP account is configured.
func NewLogSender(logger ...*zap.Logger) Sender {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &logSender{logger: l}
}

func (s *logSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("email would be sent",
		zap.String("to", msg.To),
		zap.String("kind", msg.Kind),
		zap.String("subject", msg.Subject),
	)
	return nil
}
