package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Consume подписывается на очередь и возвращает канал доставок.
// Подтверждение сообщений ручное: обработчик обязан вызывать Ack/Nack.
func Consume(ch *amqp.Channel, queue string) (<-chan amqp.Delivery, error) {
	const op = "rabbitmq.Consume"
	deliveries, err := ch.Consume(
		queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return deliveries, nil
}
