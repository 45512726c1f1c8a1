package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/digiri/giriloyo-batik/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPDispatcher publishes mint jobs to a durable queue and consumes them in
// the same process, so jobs survive a restart between webhook and mint.
type AMQPDispatcher struct {
	conn    *amqp.Connection
	pubCh   *amqp.Channel
	subCh   *amqp.Channel
	queue   string
	handler Handler
	pubMu   sync.Mutex
	done    chan struct{}
}

func NewAMQPDispatcher(url, queue string, prefetch int, handler Handler) (*AMQPDispatcher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	d := &AMQPDispatcher{conn: conn, queue: queue, handler: handler, done: make(chan struct{})}

	if err := d.setup(prefetch); err != nil {
		conn.Close()
		return nil, err
	}

	return d, nil
}

func (d *AMQPDispatcher) setup(prefetch int) error {
	var err error

	if d.pubCh, err = d.conn.Channel(); err != nil {
		return fmt.Errorf("failed to open publish channel: %w", err)
	}

	if d.subCh, err = d.conn.Channel(); err != nil {
		return fmt.Errorf("failed to open consume channel: %w", err)
	}

	_, err = d.pubCh.QueueDeclare(
		d.queue, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", d.queue, err)
	}

	if err := d.subCh.Qos(max(prefetch, 1), 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := d.subCh.Consume(
		d.queue, // queue
		"",      // consumer
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		defer close(d.done)

		for msg := range msgs {
			handleDelivery(context.Background(), msg, d.handler)
		}
	}()

	return nil
}

func (d *AMQPDispatcher) Dispatch(ctx context.Context, job models.MintJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode mint job: %w", err)
	}

	d.pubMu.Lock()
	defer d.pubMu.Unlock()

	err = d.pubCh.PublishWithContext(ctx,
		"",      // exchange
		d.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish mint job: %w", err)
	}

	return nil
}

func (d *AMQPDispatcher) Close() error {
	// closing the consume channel ends the delivery loop after the current job
	if err := d.subCh.Close(); err != nil {
		slog.Warn("Failed to close consume channel", slog.Any("error", err))
	}
	<-d.done

	if err := d.pubCh.Close(); err != nil {
		slog.Warn("Failed to close publish channel", slog.Any("error", err))
	}

	return d.conn.Close()
}

// handleDelivery acks processed jobs. A job that fails twice is dropped
// rather than requeued forever; its items stay visible for admin retry.
func handleDelivery(ctx context.Context, msg amqp.Delivery, handler Handler) {
	var job models.MintJob
	if err := json.Unmarshal(msg.Body, &job); err != nil || job.OrderID == "" {
		slog.Error("Discarding malformed mint job", slog.String("body", string(msg.Body)))
		_ = msg.Reject(false)
		return
	}

	if err := handler(ctx, job); err != nil {
		slog.Error("Mint job failed", slog.String("orderId", job.OrderID), slog.Bool("redelivered", msg.Redelivered), slog.Any("error", err))
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
}
