package item

import (
	"catalog/pkg/events"
	"context"

	"go.uber.org/zap"
)

// publishItemEvent emits a lifecycle event to the item exchange. Publishing is
// best-effort: a nil publisher disables it and failures only log a warning,
// they never fail the request that triggered them.
func publishItemEvent(ctx context.Context, publisher events.Publisher, eventName string, payload any) {
	if publisher == nil {
		return
	}

	headers := events.Headers{
		TraceID:       events.GenerateTraceID(),
		CorrelationID: events.GenerateCorrelationID(),
	}

	event := events.NewEvent(eventName, events.EventVersionV1, payload, headers)

	if err := publisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Warn("Failed to publish item event",
			zap.String("event", eventName),
			zap.Error(err),
		)
	}
}
