package repositories

import (
	"gorm.io/gorm"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
)

// GORMPetRepository is a GORM implementation of PetRepository.
type GORMPetRepository struct {
	db *gorm.DB
}

// NewGORMPetRepository creates a new instance of GORMPetRepository.
func NewGORMPetRepository(db *gorm.DB) *GORMPetRepository {
	return &GORMPetRepository{
		db: db,
	}
}

// List retrieves pets matching the filter, in insertion order.
func (r *GORMPetRepository) List(filter models.PetFilter) ([]models.Pet, error) {
	query := r.db.Model(&models.Pet{})

	if !filter.IncludeUnavailable() {
		query = query.Where("available = ?", true)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinAgeMonths != nil {
		query = query.Where("age_months >= ?", *filter.MinAgeMonths)
	}
	if filter.MaxAgeMonths != nil {
		query = query.Where("age_months <= ?", *filter.MaxAgeMonths)
	}

	var pets []models.Pet
	if err := query.Find(&pets).Error; err != nil {
		return nil, apperrors.NewUpstreamError("failed to list pets", err)
	}
	return pets, nil
}

// GetByID retrieves a single pet by its ID.
func (r *GORMPetRepository) GetByID(id string) (*models.Pet, error) {
	var pet models.Pet
	if err := r.db.First(&pet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("pet", id)
		}
		return nil, apperrors.NewUpstreamError("failed to get pet", err)
	}
	return &pet, nil
}

// Create inserts a new pet.
func (r *GORMPetRepository) Create(pet *models.Pet) error {
	if err := r.db.Create(pet).Error; err != nil {
		return apperrors.NewUpstreamError("failed to create pet", err)
	}
	return nil
}

// Update saves all fields of an existing pet.
func (r *GORMPetRepository) Update(pet *models.Pet) error {
	res := r.db.Save(pet)
	if res.Error != nil {
		return apperrors.NewUpstreamError("failed to update pet", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("pet", pet.ID)
	}
	return nil
}

// Reserve flips availability from true to false in a single conditional
// update. The WHERE clause on the current value is what serializes racing
// reservations: only one of two concurrent updates sees available=true.
func (r *GORMPetRepository) Reserve(id string) error {
	res := r.db.Model(&models.Pet{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)
	if res.Error != nil {
		return apperrors.NewUpstreamError("failed to reserve pet", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Pet{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return apperrors.NewUpstreamError("failed to reserve pet", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("pet", id)
		}
		return apperrors.NewUnavailablePetError(id)
	}
	return nil
}

// Release restores a pet's availability after a rolled-back reservation.
func (r *GORMPetRepository) Release(id string) error {
	res := r.db.Model(&models.Pet{}).
		Where("id = ?", id).
		Update("available", true)
	if res.Error != nil {
		return apperrors.NewUpstreamError("failed to release pet", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFoundError("pet", id)
	}
	return nil
}

// Count returns the number of pets in the inventory.
func (r *GORMPetRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Pet{}).Count(&count).Error; err != nil {
		return 0, apperrors.NewUpstreamError("failed to count pets", err)
	}
	return count, nil
}
