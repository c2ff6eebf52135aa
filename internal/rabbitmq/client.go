package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/config"
	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Client — клиент RabbitMQ для очереди задач геокодирования
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

// NewClient подключается к брокеру и объявляет durable-очередь
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	logger.Info("RabbitMQ queue declared", "queue", q.Name, "messages", q.Messages)
	return &Client{conn: conn, channel: ch, queue: q, logger: logger}, nil
}

// Close закрывает канал и соединение
func (c *Client) Close() {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error("failed to close RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Error("failed to close RabbitMQ connection", "error", err)
		}
	}
	c.logger.Info("RabbitMQ connection closed")
}

// PublishGeocodeRequest ставит адрес в очередь на геокодирование
func (c *Client) PublishGeocodeRequest(ctx context.Context, payload payloads.GeocodePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal geocode payload: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish geocode request: %w", err)
	}

	c.logger.Info("geocode request published", "queue", c.queue.Name, "location_id", payload.LocationID)
	return nil
}

// StartConsumingGeocodeRequests запускает один потребитель очереди.
// Возвращается сразу; обработка идет в горутине до отмены ctx.
func (c *Client) StartConsumingGeocodeRequests(ctx context.Context, handler func(context.Context, payloads.GeocodePayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	c.logger.Info("consumer registered, waiting for messages", "queue", c.queue.Name)

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Warn("RabbitMQ delivery channel closed, stopping consumer")
					return
				}
				handleDelivery(ctx, msg, handler, c.logger)
			case <-ctx.Done():
				c.logger.Info("context cancelled, stopping RabbitMQ consumer")
				return
			}
		}
	}()

	return nil
}

// handleDelivery подтверждает успешно обработанное сообщение.
// Битые сообщения и ошибки обработки отклоняются без возврата в очередь.
func handleDelivery(ctx context.Context, msg amqp.Delivery, handler func(context.Context, payloads.GeocodePayload) error, logger *slog.Logger) {
	var payload payloads.GeocodePayload
	if err := json.Unmarshal(msg.Body, &payload); err != nil || payload.LocationID == uuid.Nil {
		logger.Error("malformed geocode message", "body", string(msg.Body), "error", err)
		if err := msg.Nack(false, false); err != nil {
			logger.Error("failed to NACK malformed message", "error", err)
		}
		return
	}

	if err := handler(ctx, payload); err != nil {
		logger.Error("failed to process geocode message", "location_id", payload.LocationID, "error", err)
		if err := msg.Nack(false, false); err != nil {
			logger.Error("failed to NACK message", "error", err)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		logger.Error("failed to ACK message", "error", err)
		return
	}
	logger.Info("geocode message processed", "location_id", payload.LocationID)
}
