package handlers

import (
	"errors"

	"github.com/Om136/rentals/domain"
	"github.com/Om136/rentals/internal/api/presenters"
	"github.com/Om136/rentals/pkg/payment"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreatePaymentIntent(c *fiber.Ctx) error
		ConfirmPayment(c *fiber.Ctx) error
		GetPaymentHistory(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	req := new(domain.CreatePaymentIntentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIntent, err)
	}

	res, err := h.paymentService.CreatePaymentIntent(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateIntent, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreateIntent)
}

func (h *paymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	req := new(domain.ConfirmPaymentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmPay, err)
	}

	res, err := h.paymentService.ConfirmPayment(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedConfirmPay, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedConfirmPay, err)
		case errors.Is(err, domain.ErrPaymentNotSuccessful):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmPay, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedConfirmPay, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConfirmPay)
}

func (h *paymentHandler) GetPaymentHistory(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	history, err := h.paymentService.GetPaymentHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPayHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"payments": history}, fiber.StatusOK, domain.MessageSuccessGetPayHistory)
}
