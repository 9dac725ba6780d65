package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"petshop/internal/models"
	"petshop/internal/repositories"
	"petshop/internal/seed"
)

func TestSeedPopulatesEmptyInventory(t *testing.T) {
	repo := repositories.NewMockPetRepository()

	seeded, err := seed.Pets(repo)
	assert.NoError(t, err)
	assert.Equal(t, 10, seeded)

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), count)

	// All seeded pets start available.
	pets, err := repo.List(models.PetFilter{})
	assert.NoError(t, err)
	assert.Len(t, pets, 10)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := repositories.NewMockPetRepository()

	_, err := seed.Pets(repo)
	assert.NoError(t, err)

	// A pet is reserved between seed calls; re-seeding must not undo it.
	assert.NoError(t, repo.Reserve("pet001"))

	seeded, err := seed.Pets(repo)
	assert.NoError(t, err)
	assert.Equal(t, 0, seeded)

	pet, err := repo.GetByID("pet001")
	assert.NoError(t, err)
	assert.False(t, pet.Available)

	count, err := repo.Count()
	assert.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestSampleDataIntegrity(t *testing.T) {
	pets := seed.SamplePets()
	assert.Len(t, pets, 10)

	seen := make(map[string]bool)
	for _, p := range pets {
		assert.False(t, seen[p.ID], "duplicate pet id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Type.IsValid(), "pet %s has invalid type", p.ID)
		assert.Greater(t, p.Price, 0.0, "pet %s must have a positive price", p.ID)
		assert.GreaterOrEqual(t, p.AgeMonths, 0)
		assert.True(t, p.Available)
	}
}
