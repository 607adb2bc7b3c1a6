// Package scheduler периодически находит события, начинающиеся завтра,
// и публикует напоминания участникам в RabbitMQ.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/church-management/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/church-management/internal/lib/sl"
	"github.com/magabrotheeeer/church-management/internal/models"
)

// EventRepository определяет выборку напоминаний о завтрашних событиях.
type EventRepository interface {
	FindEventsStartingTomorrow(ctx context.Context) ([]*models.EventReminder, error)
}

// Service — планировщик напоминаний о событиях.
type Service struct {
	repo EventRepository
	log  *slog.Logger
}

// New создает новый Service.
func New(repo EventRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// PublishUpcomingEventReminders сразу публикует напоминания, затем
// повторяет публикацию каждые 12 часов до отмены контекста.
func (s *Service) PublishUpcomingEventReminders(ctx context.Context, channel *amqp.Channel) {
	s.run(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.run(ctx, channel)
		}
	}
}

func (s *Service) run(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("looking for events starting tomorrow")
	reminders, err := s.repo.FindEventsStartingTomorrow(ctx)
	if err != nil {
		s.log.Error("failed to find upcoming events", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no events starting tomorrow")
		return
	}
	s.log.Info("found event reminders", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, "notifications", "events", reminder)
		if err != nil {
			s.log.Error("failed to publish reminder", sl.Err(err))
		}
	}
}
