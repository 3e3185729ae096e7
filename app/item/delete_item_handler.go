package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"database/sql"
	"errors"
	"time"
)

type DeleteItemHandler struct {
	repository Repository
	publisher  events.Publisher
}

type DeleteItemRequest struct {
	ItemID string `params:"item_id" json:"-"`
}

type DeleteItemResponse = domain.Item

func NewDeleteItemHandler(repository Repository, publisher events.Publisher) *DeleteItemHandler {
	return &DeleteItemHandler{
		repository: repository,
		publisher:  publisher,
	}
}

// Handle removes the item and echoes its last known field values back to the
// caller rather than re-reading after the delete.
func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*DeleteItemResponse, error) {
	item, err := h.repository.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NotFound(
				"item.destroy.not_found",
				"Item not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"item.destroy.failed",
			"Failed to retrieve item",
			nil,
		)
	}

	if err := h.repository.DeleteItem(ctx, req.ItemID); err != nil {
		return nil, httperror.InternalServerError(
			"item.destroy.delete_failed",
			"An error occurred while deleting the item",
			nil,
		)
	}

	publishItemEvent(ctx, h.publisher, events.ItemDeletedEvent, events.ItemDeletedPayload{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		DeletedAt:   time.Now().UTC(),
	})

	return &item, nil
}
