package repositories

import (
	"petshop/internal/models"
)

// PetRepository defines the interface for pet inventory data access.
//
// Reserve and Release are the reservation primitives of the order flow:
// Reserve flips availability true -> false as a single conditional update
// guarded by the store's per-record atomicity, so two concurrent orders
// racing on the same pet cannot both win. Release undoes a reservation
// (rollback, or restock on cancellation when enabled).
type PetRepository interface {
	List(filter models.PetFilter) ([]models.Pet, error)
	GetByID(id string) (*models.Pet, error)
	Create(pet *models.Pet) error
	Update(pet *models.Pet) error
	Reserve(id string) error
	Release(id string) error
	Count() (int64, error)
}
