package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

type UpdateItemHandler struct {
	repository Repository
	publisher  events.Publisher
}

type UpdateItemRequest struct {
	ItemID      string  `params:"item_id" json:"-" validate:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UpdateItemResponse = domain.Item

func NewUpdateItemHandler(repository Repository, publisher events.Publisher) *UpdateItemHandler {
	return &UpdateItemHandler{
		repository: repository,
		publisher:  publisher,
	}
}

func (h UpdateItemHandler) Handle(ctx context.Context, req *UpdateItemRequest) (*UpdateItemResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, httperror.BadRequest(
				"item.update.validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return nil, httperror.InternalServerError(
			"item.update.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	item, err := h.repository.GetItem(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperror.NotFound(
				"item.update.not_found",
				"Item not found",
				nil,
			)
		}

		return nil, httperror.InternalServerError(
			"item.update.failed",
			"Failed to get item",
			nil,
		)
	}

	// Every writable field is overwritten from the request: an omitted field
	// clears the stored value, there is no partial-update semantics. The id is
	// deliberately not part of the writable set.
	item.Name = ""
	if req.Name != nil {
		item.Name = *req.Name
	}
	item.Description = req.Description

	if err := h.repository.UpdateItem(ctx, item); err != nil {
		return nil, httperror.InternalServerError(
			"item.update.update_failed",
			"An error occurred while updating the item",
			nil,
		)
	}

	publishItemEvent(ctx, h.publisher, events.ItemUpdatedEvent, events.ItemUpdatedPayload{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		UpdatedAt:   time.Now().UTC(),
	})

	return &item, nil
}
