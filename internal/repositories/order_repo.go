package repositories

import (
	"petshop/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; they only change status.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
}
