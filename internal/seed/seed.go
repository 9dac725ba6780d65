package seed

import (
	"fmt"

	"petshop/internal/models"
	"petshop/internal/repositories"
)

// SamplePets returns the initial inventory data set.
func SamplePets() []models.Pet {
	return []models.Pet{
		{
			ID:          "pet001",
			Name:        "Golden Retriever Puppy",
			Type:        models.PetTypeDog,
			Description: "Friendly and energetic Golden Retriever puppy, great with families and children. Well-socialized and vaccinated.",
			Price:       1200.00,
			AgeMonths:   3,
			Available:   true,
			ImageURL:    "https://example.com/golden-retriever.jpg",
		},
		{
			ID:          "pet002",
			Name:        "British Shorthair Kitten",
			Type:        models.PetTypeCat,
			Description: "Adorable British Shorthair kitten with beautiful blue-gray coat. Calm and affectionate temperament.",
			Price:       800.00,
			AgeMonths:   2,
			Available:   true,
			ImageURL:    "https://example.com/british-shorthair.jpg",
		},
		{
			ID:          "pet003",
			Name:        "Beagle",
			Type:        models.PetTypeDog,
			Description: "Playful Beagle with excellent hunting instincts. Friendly, curious, and great for active families.",
			Price:       950.00,
			AgeMonths:   6,
			Available:   true,
			ImageURL:    "https://example.com/beagle.jpg",
		},
		{
			ID:          "pet004",
			Name:        "Siamese Cat",
			Type:        models.PetTypeCat,
			Description: "Elegant Siamese cat with striking blue eyes. Vocal, intelligent, and social personality.",
			Price:       650.00,
			AgeMonths:   8,
			Available:   true,
			ImageURL:    "https://example.com/siamese.jpg",
		},
		{
			ID:          "pet005",
			Name:        "Cockatiel",
			Type:        models.PetTypeBird,
			Description: "Hand-tamed Cockatiel with yellow crest. Whistles and mimics sounds, very social bird.",
			Price:       150.00,
			AgeMonths:   4,
			Available:   true,
			ImageURL:    "https://example.com/cockatiel.jpg",
		},
		{
			ID:          "pet006",
			Name:        "Betta Fish",
			Type:        models.PetTypeFish,
			Description: "Beautiful Betta fish with vibrant blue and red coloring. Low maintenance and stunning to watch.",
			Price:       25.00,
			AgeMonths:   6,
			Available:   true,
			ImageURL:    "https://example.com/betta.jpg",
		},
		{
			ID:          "pet007",
			Name:        "Holland Lop Rabbit",
			Type:        models.PetTypeRabbit,
			Description: "Sweet Holland Lop rabbit with soft fur and floppy ears. Gentle and perfect for families.",
			Price:       300.00,
			AgeMonths:   5,
			Available:   true,
			ImageURL:    "https://example.com/holland-lop.jpg",
		},
		{
			ID:          "pet008",
			Name:        "Syrian Hamster",
			Type:        models.PetTypeHamster,
			Description: "Friendly Syrian hamster with golden brown fur. Active and entertaining, great starter pet.",
			Price:       45.00,
			AgeMonths:   2,
			Available:   true,
			ImageURL:    "https://example.com/hamster.jpg",
		},
		{
			ID:          "pet009",
			Name:        "German Shepherd Puppy",
			Type:        models.PetTypeDog,
			Description: "Intelligent German Shepherd puppy with excellent temperament. Loyal, trainable, and protective.",
			Price:       1500.00,
			AgeMonths:   4,
			Available:   true,
			ImageURL:    "https://example.com/german-shepherd.jpg",
		},
		{
			ID:          "pet010",
			Name:        "Parakeet Pair",
			Type:        models.PetTypeBird,
			Description: "Bonded pair of colorful parakeets (blue and green). Social, playful, and chatter together.",
			Price:       80.00,
			AgeMonths:   7,
			Available:   true,
			ImageURL:    "https://example.com/parakeets.jpg",
		},
	}
}

// Pets seeds the sample inventory into an empty repository. The operation
// is idempotent: a non-empty inventory is left untouched. It returns the
// number of pets inserted.
func Pets(repo repositories.PetRepository) (int, error) {
	count, err := repo.Count()
	if err != nil {
		return 0, fmt.Errorf("checking inventory before seed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	pets := SamplePets()
	for i := range pets {
		if err := repo.Create(&pets[i]); err != nil {
			return i, fmt.Errorf("seeding pet %s: %w", pets[i].ID, err)
		}
	}
	return len(pets), nil
}
