package repositories

import (
	"time"

	"gorm.io/gorm"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, apperrors.NewUpstreamError("failed to get all orders", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("order", id)
		}
		return nil, apperrors.NewUpstreamError("failed to get order", err)
	}
	return &order, nil
}

// Create persists a new order together with its item snapshots.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return apperrors.NewUpstreamError("failed to create order", err)
	}
	return nil
}

// UpdateStatus sets the order status and refreshes the update timestamp.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return apperrors.NewUpstreamError("failed to update order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("order", id)
	}
	return nil
}
