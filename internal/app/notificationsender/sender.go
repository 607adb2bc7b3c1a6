// Package notificationsender собирает приложение отправителя напоминаний.
package notificationsender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/church-management/internal/config"
	"github.com/magabrotheeeer/church-management/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/church-management/internal/services/sender"
)

// App представляет приложение отправителя.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.Service
	logger        *slog.Logger
}

// New создает новый экземпляр приложения отправителя.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	queues := rabbitmq.GetNotificationQueues()
	ch, err := rabbitmq.SetupChannel(conn, queues)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.New(transport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run подписывается на очередь напоминаний и обрабатывает сообщения
// до отмены контекста. Неудачные сообщения возвращаются в очередь.
func (a *App) Run(ctx context.Context) error {
	deliveries, err := rabbitmq.Consume(a.ch, "event_reminders")
	if err != nil {
		a.logger.Error("failed to start event_reminders consumer", sl.Err(err))
		return err
	}

	go func() {
		for d := range deliveries {
			if err := a.senderService.SendEventReminder(d.Body); err != nil {
				a.logger.Error("failed to process reminder", sl.Err(err))
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}()

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	return nil
}
