package services

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
	"petshop/internal/repositories"
	"petshop/pkg/rabbitmq"
)

// Order lifecycle event types published to RabbitMQ.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
)

// PlaceOrderInput is the validated request for creating an order.
type PlaceOrderInput struct {
	CustomerName    string   `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerEmail   string   `json:"customer_email" validate:"required,email"`
	CustomerPhone   string   `json:"customer_phone" validate:"required,min=1"`
	DeliveryAddress string   `json:"delivery_address" validate:"required,min=5"`
	PetIDs          []string `json:"pet_ids" validate:"required,min=1,dive,required"`
}

// OrderService handles order creation, lookups and status transitions.
//
// Order creation reserves every requested pet through a per-pet
// conditional update; on any failure the already-reserved pets are
// released before the error surfaces, so the observable contract is
// all-or-nothing.
type OrderService struct {
	orderRepo       repositories.OrderRepository
	petRepo         repositories.PetRepository
	mqClient        *rabbitmq.Client
	validate        *validator.Validate
	releaseOnCancel bool
	logger          *zap.Logger
}

// NewOrderService creates a new OrderService. mqClient may be nil, in
// which case lifecycle events are skipped. releaseOnCancel controls
// whether cancelling an order returns its pets to inventory; the
// reference behavior keeps them withdrawn.
func NewOrderService(orderRepo repositories.OrderRepository, petRepo repositories.PetRepository, mqClient *rabbitmq.Client, releaseOnCancel bool, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orderRepo:       orderRepo,
		petRepo:         petRepo,
		mqClient:        mqClient,
		validate:        validator.New(),
		releaseOnCancel: releaseOnCancel,
		logger:          logger,
	}
}

// CreateOrder validates the input, atomically reserves every requested
// pet, snapshots them into order items and persists a pending order.
func (s *OrderService) CreateOrder(input PlaceOrderInput) (*models.Order, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	// Reserve pets one by one. Each reservation is a conditional update
	// serialized by the store, so two racing orders cannot both claim the
	// same pet. On failure, everything reserved so far is released.
	reserved := make([]string, 0, len(input.PetIDs))
	items := make([]models.OrderItem, 0, len(input.PetIDs))
	var totalAmount float64

	for _, petID := range input.PetIDs {
		if err := s.petRepo.Reserve(petID); err != nil {
			s.rollbackReservations(reserved)
			return nil, err
		}
		reserved = append(reserved, petID)

		pet, err := s.petRepo.GetByID(petID)
		if err != nil {
			s.rollbackReservations(reserved)
			return nil, err
		}
		items = append(items, models.OrderItem{
			PetID:   pet.ID,
			PetName: pet.Name,
			Price:   pet.Price,
		})
		totalAmount += pet.Price
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID: newOrderID(),
		Customer: models.CustomerInfo{
			Name:    input.CustomerName,
			Email:   input.CustomerEmail,
			Phone:   input.CustomerPhone,
			Address: input.DeliveryAddress,
		},
		Items:       items,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orderRepo.Create(order); err != nil {
		s.rollbackReservations(reserved)
		return nil, err
	}

	s.publishEvent(EventOrderCreated, order.ID, map[string]interface{}{
		"status":       order.Status,
		"total_amount": order.TotalAmount,
		"items_count":  len(order.Items),
	})

	return order, nil
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrderStatus retrieves only the status of an order.
func (s *OrderService) GetOrderStatus(id string) (models.OrderStatus, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

// UpdateOrderStatus moves an order to a new status, rejecting transitions
// the state machine does not allow, and returns the updated order.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid order status: " + string(status))
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, apperrors.NewInvalidTransitionError(string(order.Status), string(status))
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	if status == models.OrderStatusCancelled && s.releaseOnCancel {
		for _, item := range order.Items {
			if err := s.petRepo.Release(item.PetID); err != nil {
				s.logger.Warn("failed to release pet after cancellation",
					zap.String("order_id", id),
					zap.String("pet_id", item.PetID),
					zap.Error(err))
			}
		}
	}

	updated, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent(EventOrderStatusUpdated, id, map[string]interface{}{
		"from": order.Status,
		"to":   updated.Status,
	})

	return updated, nil
}

func (s *OrderService) validateInput(input PlaceOrderInput) error {
	if err := s.validate.Struct(input); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.NewValidationError("invalid order request")
		}
		details := make([]apperrors.ValidationDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, apperrors.ValidationDetail{
				Field:   e.Field(),
				Message: "failed on rule: " + e.Tag(),
			})
		}
		return apperrors.NewValidationError("invalid order request", details...)
	}
	return nil
}

// rollbackReservations releases pets reserved by a failed order attempt.
// Release failures are logged, not surfaced: the caller's error is the
// one that matters.
func (s *OrderService) rollbackReservations(petIDs []string) {
	for _, id := range petIDs {
		if err := s.petRepo.Release(id); err != nil {
			s.logger.Error("failed to roll back pet reservation",
				zap.String("pet_id", id),
				zap.Error(err))
		}
	}
}

// publishEvent sends an order lifecycle event, best-effort.
func (s *OrderService) publishEvent(eventType, orderID string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishOrderEvent(eventType, orderID, payload); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("event", eventType),
			zap.String("order_id", orderID),
			zap.Error(err))
	}
}

// newOrderID generates a short human-shareable order identifier of the
// form ORD-XXXXXXXX.
func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
