package consumers

import (
	"catalog/pkg/events"
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ItemEventHandler turns item lifecycle events into structured audit log
// entries. It keeps no state beyond counters; the item table itself stays the
// single source of truth.
type ItemEventHandler struct {
	logger    *zap.Logger
	processed map[string]int
}

func NewItemEventHandler(logger *zap.Logger) *ItemEventHandler {
	return &ItemEventHandler{
		logger:    logger,
		processed: make(map[string]int),
	}
}

func (h *ItemEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	switch event.Event {
	case events.ItemCreatedEvent, events.ItemUpdatedEvent, events.ItemDeletedEvent:
		return h.audit(event)
	default:
		zap.L().Warn("Unknown item event type", zap.String("event", event.Event))
		return nil
	}
}

func (h *ItemEventHandler) audit(event *events.Event) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("malformed payload - marshal failed: %w", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return fmt.Errorf("malformed payload - unmarshal failed: %w", err)
	}

	itemID, ok := payload["id"].(string)
	if !ok || itemID == "" {
		return fmt.Errorf("malformed payload - id missing or invalid")
	}

	name, _ := payload["name"].(string)

	h.processed[event.Event]++

	h.logger.Info("Item event audited",
		zap.String("event", event.Event),
		zap.String("version", event.Version),
		zap.String("itemId", itemID),
		zap.String("name", name),
		zap.Time("occurredAt", event.Timestamp),
		zap.String("traceId", event.TraceID),
		zap.Int("totalSeen", h.processed[event.Event]),
	)

	return nil
}
