// Package queue_publisher publishes domain events to RabbitMQ. Errors are
// logged and returned so callers can ignore broker failures without
// interrupting the request that triggered the event.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/SagarGautam07/TickBuzz/internal/queue"
)

// PublishBookingConfirmed publishes a BookingConfirmedEvent to the durable
// "booking.confirmed" queue. An empty url falls back to the environment and
// then the local default. The connection is short-lived: confirmations are
// rare enough that holding a broker connection open buys nothing.
func PublishBookingConfirmed(ctx context.Context, url string, event q.BookingConfirmedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL(url))
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		"booking.confirmed",
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", "booking.confirmed", false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
