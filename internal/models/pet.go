package models

// PetType enumerates the species categories the shop sells.
type PetType string

const (
	PetTypeDog     PetType = "dog"
	PetTypeCat     PetType = "cat"
	PetTypeBird    PetType = "bird"
	PetTypeFish    PetType = "fish"
	PetTypeRabbit  PetType = "rabbit"
	PetTypeHamster PetType = "hamster"
)

// PetTypes lists every valid pet type, in declaration order.
var PetTypes = []PetType{PetTypeDog, PetTypeCat, PetTypeBird, PetTypeFish, PetTypeRabbit, PetTypeHamster}

// IsValid reports whether t is one of the known pet types.
func (t PetType) IsValid() bool {
	for _, v := range PetTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Pet represents a pet in the shop inventory. Availability flips to false
// when an order reserves the pet; pets are never deleted.
type Pet struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"required"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Type        PetType `json:"type" gorm:"type:varchar(16);index" validate:"required,oneof=dog cat bird fish rabbit hamster"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	AgeMonths   int     `json:"age_months" validate:"gte=0"`
	Available   bool    `json:"available" gorm:"not null"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// PetFilter holds the recognized inventory query options. Pointer fields
// distinguish "not set" from zero; AvailableOnly defaults to true when nil.
type PetFilter struct {
	Type          string   `query:"pet_type" validate:"omitempty,oneof=dog cat bird fish rabbit hamster"`
	MaxPrice      *float64 `query:"max_price" validate:"omitempty,gt=0"`
	MinAgeMonths  *int     `query:"min_age_months" validate:"omitempty,gte=0"`
	MaxAgeMonths  *int     `query:"max_age_months" validate:"omitempty,gte=0"`
	AvailableOnly *bool    `query:"available_only"`
}

// IncludeUnavailable reports whether reserved pets should be listed too.
func (f PetFilter) IncludeUnavailable() bool {
	return f.AvailableOnly != nil && !*f.AvailableOnly
}

// Matches reports whether the pet satisfies every set filter option.
func (f PetFilter) Matches(p Pet) bool {
	if !f.IncludeUnavailable() && !p.Available {
		return false
	}
	if f.Type != "" && p.Type != PetType(f.Type) {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinAgeMonths != nil && p.AgeMonths < *f.MinAgeMonths {
		return false
	}
	if f.MaxAgeMonths != nil && p.AgeMonths > *f.MaxAgeMonths {
		return false
	}
	return true
}
