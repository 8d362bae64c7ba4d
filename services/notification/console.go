package notification

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleSender logs notifications instead of delivering them. It stands in
// for the SMTP sender when no SMTP host is configured, so the intake flow
// never runs without a sender.
type ConsoleSender struct {
	Logger *zap.Logger
}

func NewConsoleSender(logger *zap.Logger) *ConsoleSender {
	return &ConsoleSender{Logger: logger}
}

func (s *ConsoleSender) Send(ctx context.Context, msg Message) error {
	body, err := renderTemplate(msg.Template, msg.Data)
	if err != nil {
		return err
	}
	s.Logger.Info("Notification (console)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("template", msg.Template),
		zap.Int("bodyBytes", len(body)),
	)
	return nil
}
