package item

import (
	"catalog/domain"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"context"
	"time"

	"github.com/go-playground/validator/v10"
)

type CreateItemHandler struct {
	repository Repository
	publisher  events.Publisher
}

type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type CreateItemResponse = domain.Item

func NewCreateItemHandler(repository Repository, publisher events.Publisher) *CreateItemHandler {
	return &CreateItemHandler{
		repository: repository,
		publisher:  publisher,
	}
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*CreateItemResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return nil, httperror.BadRequest(
				"item.create.validation_failed",
				"Validation failed for the request",
				ve.Error(),
			)
		}

		return nil, httperror.InternalServerError(
			"item.create.validation_error",
			"An unexpected validation error occurred",
			nil,
		)
	}

	item := domain.NewItem(req.Name, req.Description)

	if err := h.repository.CreateItem(ctx, item); err != nil {
		return nil, httperror.InternalServerError(
			"item.create.create_failed",
			"An error occurred while creating the item",
			nil,
		)
	}

	publishItemEvent(ctx, h.publisher, events.ItemCreatedEvent, events.ItemCreatedPayload{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   time.Now().UTC(),
	})

	return &item, nil
}
