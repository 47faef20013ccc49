package drink

import (
	"fmt"
	"strings"

	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

const (
	EntityName     = "Drink"
	DeletedSuccess = "Drink deleted successfully."
	garnishSuffix  = " (for garnish)"
)

// IngredientLine is one ingredient of a drink being created.
type IngredientLine struct {
	Name       string
	Amount     string
	AmountUnit *string
	Brand      *string
	Garnish    bool
}

// Patch holds the fields a drink update may change. Nil means untouched.
type Patch struct {
	Name       *string
	Directions *string
	Serves     *int
	Notes      *string
	Published  *bool
}

func (p Patch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Directions != nil {
		fields["directions"] = *p.Directions
	}
	if p.Serves != nil {
		fields["serves"] = *p.Serves
	}
	if p.Notes != nil {
		fields["notes"] = *p.Notes
	}
	if p.Published != nil {
		fields["published"] = *p.Published
	}
	return fields
}

// DisplayName is the brand when present, else the ingredient name, with the
// garnish marker appended.
func DisplayName(line models.IngredientOnDrink) string {
	name := ""
	if line.Ingredient != nil {
		name = line.Ingredient.Name
	}
	if line.Brand != nil && *line.Brand != "" {
		name = *line.Brand
	}
	if line.Garnish {
		name += garnishSuffix
	}
	return name
}

func AmountUnit(line models.IngredientOnDrink) string {
	if line.AmountUnit == nil {
		return ""
	}
	return *line.AmountUnit
}

// CheckLines rejects blank names and an ingredient listed twice, since a drink
// links to each ingredient at most once.
func CheckLines(lines []IngredientLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.Name) == "" {
			return httperr.ErrBadRequest("invalid_ingredient", "Ingredient name is required.")
		}
		if _, ok := seen[line.Name]; ok {
			return httperr.ErrConflict(
				"duplicate_ingredient",
				fmt.Sprintf("Ingredient %s is listed more than once.", line.Name),
			)
		}
		seen[line.Name] = struct{}{}
	}
	return nil
}

func ErrNameTaken(ownerName, drinkName string) error {
	return httperr.ErrConflict(
		"drink_already_exists",
		fmt.Sprintf("%s already has a drink called %s.", ownerName, drinkName),
	)
}

func DeletedNotice(name string) string {
	return fmt.Sprintf("%s has been deleted.", name)
}
