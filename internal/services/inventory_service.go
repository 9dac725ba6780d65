package services

import (
	"github.com/go-playground/validator/v10"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
	"petshop/internal/repositories"
)

// InventoryService answers pet inventory queries. It has no side effects;
// availability is only ever changed by the order service.
type InventoryService struct {
	repo     repositories.PetRepository
	validate *validator.Validate
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.PetRepository) *InventoryService {
	return &InventoryService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListPets returns the pets matching the filter. Reserved pets are
// excluded unless the filter explicitly asks for them.
func (s *InventoryService) ListPets(filter models.PetFilter) ([]models.Pet, error) {
	if err := s.validateFilter(filter); err != nil {
		return nil, err
	}
	return s.repo.List(filter)
}

// GetPet retrieves a single pet by its ID.
func (s *InventoryService) GetPet(id string) (*models.Pet, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("pet id is required")
	}
	return s.repo.GetByID(id)
}

func (s *InventoryService) validateFilter(filter models.PetFilter) error {
	if err := s.validate.Struct(filter); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.NewValidationError("invalid pet filter")
		}
		details := make([]apperrors.ValidationDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, apperrors.ValidationDetail{
				Field:   e.Field(),
				Message: "failed on rule: " + e.Tag(),
			})
		}
		return apperrors.NewValidationError("invalid pet filter", details...)
	}
	if filter.MinAgeMonths != nil && filter.MaxAgeMonths != nil && *filter.MinAgeMonths > *filter.MaxAgeMonths {
		return apperrors.NewValidationError("min_age_months must not exceed max_age_months")
	}
	return nil
}
