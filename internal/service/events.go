package service

import (
	"context"

	"github.com/autoshowroom/backend/internal/logging"
	"github.com/autoshowroom/backend/internal/mykafka"
)

// publish is best-effort: the store write already succeeded.
func publish(ctx context.Context, p mykafka.Publisher, topic, key, eventType string, data any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, mykafka.NewEvent(eventType, data)); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", topic, "type", eventType, "error", err)
	}
}
