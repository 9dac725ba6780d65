package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
	"petshop/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
	logger  *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Get("/:id/status", h.HandleGetOrderStatus)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders lists all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		h.logger.Error("listing orders failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleCreateOrder creates a new order from customer fields and pet ids.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var input services.PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, apperrors.NewValidationError("invalid request body: "+err.Error()))
	}

	order, err := h.service.CreateOrder(input)
	if err != nil {
		h.logger.Info("order creation rejected", zap.Error(err))
		return respondError(c, err)
	}

	h.logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int("items", len(order.Items)))
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrderByID retrieves a full order.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGetOrderStatus retrieves only the status of an order.
func (h *OrderHandler) HandleGetOrderStatus(c *fiber.Ctx) error {
	status, err := h.service.GetOrderStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": status})
}

// HandleUpdateOrderStatus transitions an order to a new status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, apperrors.NewValidationError("invalid request body: "+err.Error()))
	}
	if body.Status == "" {
		return respondError(c, apperrors.NewValidationError("status is required"))
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.Info("order status updated",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)))
	return c.JSON(order)
}
