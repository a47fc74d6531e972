package routes

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	"github.com/BruksfildServices01/showroom-scheduler/internal/notification"
)

// NewChannel picks the delivery transport for status notifications. The
// returned close func releases broker connections.
func NewChannel(cfg *config.Config, log *zap.Logger) (notification.Channel, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Notify.Channel {
	case "", "log":
		return notification.NewLogChannel(log), noop, nil

	case "smtp":
		return notification.NewSMTPChannel(cfg.Notify.SMTP), noop, nil

	case "webhook":
		if cfg.Notify.WebhookURL == "" {
			return nil, nil, fmt.Errorf("NOTIFY_WEBHOOK_URL is required for the webhook channel")
		}
		return notification.NewWebhookChannel(cfg.Notify.WebhookURL, cfg.Notify.WebhookToken), noop, nil

	case "rabbitmq":
		ch, err := notification.NewRabbitMQChannel(cfg.Notify.RabbitMQURL, cfg.Notify.RabbitMQQueue)
		if err != nil {
			return nil, nil, err
		}
		return ch, ch.Close, nil

	case "kafka":
		ch := notification.NewKafkaChannel(cfg.Notify.KafkaBrokers, cfg.Notify.KafkaTopic)
		return ch, ch.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown NOTIFY_CHANNEL %q", cfg.Notify.Channel)
	}
}
