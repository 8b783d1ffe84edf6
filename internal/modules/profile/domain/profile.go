package domain

import (
	"fmt"

	apperrors "fitcoach/internal/platform/errors"
)

// Gender as the user selects it. The backend wire format abbreviates
// male/female and passes anything else through.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Accepted integer ranges for the profile stats.
const (
	MinWeight, MaxWeight = 20, 200
	MinHeight, MaxHeight = 50, 250
	MinAge, MaxAge       = 1, 120
)

func ValidWeight(kg int) bool { return kg >= MinWeight && kg <= MaxWeight }
func ValidHeight(cm int) bool { return cm >= MinHeight && cm <= MaxHeight }
func ValidAge(years int) bool { return years >= MinAge && years <= MaxAge }

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// APIGender maps the selection to the wire value.
func APIGender(g Gender) string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	default:
		return string(g)
	}
}

// GenderFromAPI reverses APIGender for prefilling edit forms.
func GenderFromAPI(s string) Gender {
	switch s {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return Gender(s)
	}
}

// Profile is the client's transient editable copy; the authoritative
// record lives server-side.
type Profile struct {
	Weight   int
	Height   int
	Age      int
	Gender   Gender
	Username string
	Email    string
}

// ValidateStats checks the four profile-completion fields.
func (p Profile) ValidateStats() error {
	if !ValidWeight(p.Weight) {
		return fmt.Errorf("weight %d out of range %d-%d: %w", p.Weight, MinWeight, MaxWeight, apperrors.ErrInvalidInput)
	}
	if !ValidHeight(p.Height) {
		return fmt.Errorf("height %d out of range %d-%d: %w", p.Height, MinHeight, MaxHeight, apperrors.ErrInvalidInput)
	}
	if !ValidAge(p.Age) {
		return fmt.Errorf("age %d out of range %d-%d: %w", p.Age, MinAge, MaxAge, apperrors.ErrInvalidInput)
	}
	if !ValidGender(p.Gender) {
		return fmt.Errorf("gender %q: %w", p.Gender, apperrors.ErrInvalidInput)
	}
	return nil
}
