package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "petshop/internal/errors"
	"petshop/internal/models"
	"petshop/internal/services"
)

// PetHandler handles HTTP requests for the pet inventory.
type PetHandler struct {
	service *services.InventoryService
	logger  *zap.Logger
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *services.InventoryService, logger *zap.Logger) *PetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PetHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the pet routes with the Fiber app.
func (h *PetHandler) RegisterRoutes(router fiber.Router) {
	petRoutes := router.Group("/pets")
	petRoutes.Get("/", h.HandleListPets)
	petRoutes.Get("/:id", h.HandleGetPetByID)
}

// HandleListPets lists pets matching the query-parameter filter.
// Recognized parameters: pet_type, max_price, min_age_months,
// max_age_months, available_only (default true).
func (h *PetHandler) HandleListPets(c *fiber.Ctx) error {
	var filter models.PetFilter
	if err := c.QueryParser(&filter); err != nil {
		return respondError(c, apperrors.NewValidationError("invalid query parameters: "+err.Error()))
	}

	pets, err := h.service.ListPets(filter)
	if err != nil {
		h.logger.Warn("listing pets failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(pets)
}

// HandleGetPetByID retrieves a single pet.
func (h *PetHandler) HandleGetPetByID(c *fiber.Ctx) error {
	pet, err := h.service.GetPet(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pet)
}
