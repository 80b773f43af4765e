package handlers

import (
	"errors"
	"strconv"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/internal/api/presenters"
	"github.com/Om136/rentals/pkg/item"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		CreateItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemByID(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetMyItems(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

// currentUserID reads the authenticated caller's id set by the auth
// middleware.
func currentUserID(c *fiber.Ctx) (uint, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return 0, domain.ErrTokenInvalid
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenInvalid
	}
	return uint(id), nil
}

func itemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrItemNotFound
	}
	return uint(id), nil
}

func (h *itemHandler) CreateItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	req := new(domain.CreateItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Optional multipart image.
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateItem, err)
	}

	res, err := h.itemService.CreateItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateItem)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	filter := item.FilterFromQuery(c.Queries())

	items, err := h.itemService.SearchItems(c.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFilter) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetItems)
}

func (h *itemHandler) GetItemByID(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, err)
	}

	res, err := h.itemService.GetItemByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetItem)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	id, err := itemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, err)
	}

	req := new(domain.UpdateItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.itemService.UpdateItem(c.Context(), id, *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, err)
		case errors.Is(err, domain.ErrUnauthorizedItemAccess):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateItem, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	id, err := itemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, err)
	}

	res, err := h.itemService.DeleteItem(c.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageItemNotFound, err)
		case errors.Is(err, domain.ErrUnauthorizedItemAccess):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteItem, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteItem, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *itemHandler) GetMyItems(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	items, err := h.itemService.GetUserItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMyItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMyItems)
}
