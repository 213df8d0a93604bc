package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/inventory-backend/stockroom/internal/config"
	"github.com/inventory-backend/stockroom/internal/usecase"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// STARTTLS必須・SSL直結なし・証明書検証ありのSMTP送信
type SMTPMailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// 送信ごとに接続する。Clientは並行利用しない
func (s *SMTPMailer) newClient() (*gomail.Client, error) {
	return gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTLSConfig(&tls.Config{
			ServerName: s.cfg.Host,
			MinVersion: tls.VersionTLS12,
		}),
		gomail.WithTimeout(s.cfg.Timeout),
	)
}

func (s *SMTPMailer) Send(ctx context.Context, m usecase.Mail) error {
	msg, err := buildMessage(s.cfg.From, m)
	if err != nil {
		return err
	}

	client, err := s.newClient()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail via %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}

	s.logger.Debug("mail sent", zap.Strings("to", m.To), zap.String("subject", m.Subject))
	return nil
}

func buildMessage(from string, m usecase.Mail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, m.HTMLBody)
	return msg, nil
}
