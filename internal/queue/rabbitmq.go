package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/streadway/amqp"
)

const ImportQueue = "catalog_import"

// * ImportRequest asks the worker to reload the catalog into the mirror
type ImportRequest struct {
	Source      string    `json:"source"`
	RequestedAt time.Time `json:"requested_at"`
}

type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &RabbitMQ{
		conn:    conn,
		channel: channel,
	}, nil
}

func (r *RabbitMQ) declare() (amqp.Queue, error) {
	return r.channel.QueueDeclare(
		ImportQueue,
		true,
		false,
		false,
		false,
		nil,
	)
}

func (r *RabbitMQ) PublishImportRequest(ctx context.Context, req ImportRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	queue, err := r.declare()
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	return r.channel.Publish(
		"",
		queue.Name,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    req.RequestedAt,
			Body:         body,
		},
	)
}

// * ConsumeImportRequests returns a channel of decoded requests that closes when
// * ctx is done or the broker closes the delivery stream
func (r *RabbitMQ) ConsumeImportRequests(ctx context.Context) (<-chan ImportRequest, error) {
	queue, err := r.declare()
	if err != nil {
		return nil, err
	}

	msgs, err := r.channel.Consume(
		queue.Name,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	out := make(chan ImportRequest)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}

				var req ImportRequest
				if err := json.Unmarshal(d.Body, &req); err != nil {
					logger.Error("Error decoding import request: %v", err)
					continue
				}

				select {
				case out <- req:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (r *RabbitMQ) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	return r.conn.Close()
}
