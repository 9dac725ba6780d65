package repositories

import (
	"sync"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
)

// MockPetRepository is an in-memory implementation of PetRepository with
// the same reservation semantics as the GORM implementation.
type MockPetRepository struct {
	pets  map[string]models.Pet
	order []string // insertion order for List
	mu    sync.RWMutex
}

// NewMockPetRepository creates a new instance of MockPetRepository.
func NewMockPetRepository() *MockPetRepository {
	return &MockPetRepository{
		pets: make(map[string]models.Pet),
	}
}

// List returns pets matching the filter, in insertion order.
func (r *MockPetRepository) List(filter models.PetFilter) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]models.Pet, 0, len(r.pets))
	for _, id := range r.order {
		p := r.pets[id]
		if filter.Matches(p) {
			pets = append(pets, p)
		}
	}
	return pets, nil
}

// GetByID returns a pet by its ID.
func (r *MockPetRepository) GetByID(id string) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("pet", id)
	}
	return &pet, nil
}

// Create adds a new pet.
func (r *MockPetRepository) Create(pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pets[pet.ID]; !exists {
		r.order = append(r.order, pet.ID)
	}
	r.pets[pet.ID] = *pet
	return nil
}

// Update modifies an existing pet.
func (r *MockPetRepository) Update(pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pets[pet.ID]; !ok {
		return apperrors.NewNotFoundError("pet", pet.ID)
	}
	r.pets[pet.ID] = *pet
	return nil
}

// Reserve flips availability true -> false under the repository lock,
// mirroring the conditional-update contract of the GORM implementation.
func (r *MockPetRepository) Reserve(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.pets[id]
	if !ok {
		return apperrors.NewNotFoundError("pet", id)
	}
	if !pet.Available {
		return apperrors.NewUnavailablePetError(id)
	}
	pet.Available = false
	r.pets[id] = pet
	return nil
}

// Release restores a pet's availability.
func (r *MockPetRepository) Release(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.pets[id]
	if !ok {
		return apperrors.NewNotFoundError("pet", id)
	}
	pet.Available = true
	r.pets[id] = pet
	return nil
}

// Count returns the number of pets.
func (r *MockPetRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.pets)), nil
}
