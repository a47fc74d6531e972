package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogChannel only logs the message; the default when no transport is configured.
type LogChannel struct {
	log *zap.Logger
}

func NewLogChannel(log *zap.Logger) *LogChannel {
	return &LogChannel{log: log}
}

func (c *LogChannel) Name() string { return "log" }

func (c *LogChannel) Deliver(_ context.Context, msg Message) error {
	c.log.Info("notification",
		zap.String("appointment_id", msg.AppointmentID),
		zap.String("status", msg.NewStatus),
		zap.String("template", string(msg.Template)),
		zap.String("recipient", msg.Recipient),
		zap.String("subject", msg.Subject),
	)
	return nil
}
