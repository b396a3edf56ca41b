package service

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Broadcaster is anything that can deliver a serialized stock event: the
// websocket hub, the Redis publisher.
type Broadcaster interface {
	Broadcast(msg []byte) error
}

// EventPublisher marshals a payload once and hands it to every sink.
// Delivery is best-effort; failures are logged and never surface to callers.
type EventPublisher struct {
	sinks []Broadcaster
	log   *zap.Logger
}

func NewEventPublisher(log *zap.Logger, sinks ...Broadcaster) *EventPublisher {
	return &EventPublisher{sinks: sinks, log: log}
}

func (p *EventPublisher) Publish(payload map[string]interface{}) {
	if p == nil || len(p.sinks) == 0 {
		return
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("marshal stock event", zap.Error(err))
		return
	}
	for _, sink := range p.sinks {
		if err := sink.Broadcast(msg); err != nil {
			p.log.Warn("stock event not delivered", zap.Any("action", payload["action"]), zap.Error(err))
		}
	}
}
