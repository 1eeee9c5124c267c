package pubsub

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const notificationChannel = "moqawil:notifications"

// NotificationMessage is the payload relayed from the API process to
// websocket pushers. CompanyID 0 means broadcast to every company.
type NotificationMessage struct {
	CompanyID  int64  `json:"company_id"`
	SenderType string `json:"sender_type"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}

type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) Publish(ctx context.Context, msg *NotificationMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, notificationChannel, data).Err()
}

type Subscriber struct {
	rdb *redis.Client
}

func NewSubscriber(rdb *redis.Client) *Subscriber {
	return &Subscriber{rdb: rdb}
}

// Subscribe consumes notification messages until ctx is cancelled,
// calling handler for each. Malformed payloads are logged and skipped.
func (s *Subscriber) Subscribe(ctx context.Context, handler func(*NotificationMessage)) error {
	sub := s.rdb.Subscribe(ctx, notificationChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg NotificationMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				log.Error().Err(err).Str("payload", m.Payload).Msg("failed to decode notification message")
				continue
			}
			handler(&msg)
		}
	}
}
