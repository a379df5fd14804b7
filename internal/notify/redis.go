package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher pushes events onto per-salon and per-client pub/sub
// channels consumed by the notification service.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, salonChannel(ev.SalonID), body).Err(); err != nil {
		return err
	}

	if ev.ClientID != "" {
		if err := p.client.Publish(ctx, clientChannel(ev.ClientID), body).Err(); err != nil {
			return err
		}
	}

	return nil
}

func salonChannel(salonID uint) string {
	return fmt.Sprintf("notify:salon:%d", salonID)
}

func clientChannel(clientID string) string {
	return "notify:client:" + clientID
}

var _ Publisher = (*RedisPublisher)(nil)
