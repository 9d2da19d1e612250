package handlers

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/internal/api/presenters"
	"Recipe-Catalog/pkg/order"
	"Recipe-Catalog/pkg/payment"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetOrderHistory(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService   order.OrderService
		paymentService payment.PaymentService
	}
)

func NewOrderHandler(orderService order.OrderService, paymentService payment.PaymentService) OrderHandler {
	return &orderHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	res, err := h.orderService.PlaceOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedPlaceOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPlaceOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPlaceOrder)
}

func (h *orderHandler) GetOrderHistory(c *fiber.Ctx) error {
	items, err := h.orderService.GetOrderHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"history": items}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *orderHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.paymentService.Checkout(c.Context(), c.Params("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCheckout, err)
		case errors.Is(err, domain.ErrRecipeNotPriced):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCheckout, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}
