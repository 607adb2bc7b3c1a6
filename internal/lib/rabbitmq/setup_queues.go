package rabbitmq

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	Name       string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди пайплайна уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{Name: "event_reminders", RoutingKey: "events"},
	}
}
