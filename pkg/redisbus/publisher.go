package redisbus

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

// Publisher forwards stock events to a Redis channel so other processes
// (e.g. outlet displays) can follow ledger activity.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

func (p *Publisher) Channel() string {
	return p.channel
}

// Publish sends msg to the configured channel.
func (p *Publisher) Publish(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	return p.client.Publish(ctx, p.channel, msg).Err()
}

// Broadcast satisfies the service-side broadcaster contract; delivery is best-effort.
func (p *Publisher) Broadcast(msg []byte) error {
	return p.Publish(context.Background(), msg)
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
