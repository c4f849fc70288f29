package recipe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/ladle/internal/mealdb"
)

// nullToken is the string TheMealDB stores in place of a missing value.
const nullToken = "null"

// DefaultPlaceholder fills quick facts the API never provides.
const DefaultPlaceholder = "N/A"

// Placeholders holds the display values for quick facts.
type Placeholders struct {
	PrepTime string
	CookTime string
	Servings string
}

// DefaultPlaceholders returns "N/A" for every quick fact.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		PrepTime: DefaultPlaceholder,
		CookTime: DefaultPlaceholder,
		Servings: DefaultPlaceholder,
	}
}

// Normalizer converts raw records to Recipes. The zero value uses
// DefaultPlaceholders for any blank placeholder.
type Normalizer struct {
	Placeholders Placeholders
}

// Normalize converts a raw record using default placeholders.
func Normalize(meal mealdb.Meal) Recipe {
	return Normalizer{}.Normalize(meal)
}

// Normalize converts a raw record. It never fails; missing fields yield
// empty values.
func (n Normalizer) Normalize(meal mealdb.Meal) Recipe {
	p := n.placeholders()
	return Recipe{
		ID:           meal.ID(),
		Name:         strings.TrimSpace(meal.Name()),
		ImageURL:     strings.TrimSpace(meal.Thumbnail()),
		Ingredients:  ingredients(meal),
		Instructions: splitLines(meal.Instructions()),
		Category:     presentValue(meal.Field(mealdb.FieldCategory)),
		Area:         presentValue(meal.Field(mealdb.FieldArea)),
		Tags:         tags(meal.Field(mealdb.FieldTags)),
		VideoURL:     presentValue(meal.Field(mealdb.FieldYouTube)),
		SourceURL:    presentValue(meal.Field(mealdb.FieldSource)),
		PrepTime:     p.PrepTime,
		CookTime:     p.CookTime,
		Servings:     p.Servings,
	}
}

// NormalizeAll converts records in order, dropping any without an id. The
// second return value counts dropped records.
func (n Normalizer) NormalizeAll(meals []mealdb.Meal) ([]Recipe, int) {
	out := make([]Recipe, 0, len(meals))
	dropped := 0
	for _, meal := range meals {
		if meal.ID() == "" {
			dropped++
			continue
		}
		out = append(out, n.Normalize(meal))
	}
	return out, dropped
}

func (n Normalizer) placeholders() Placeholders {
	p := n.Placeholders
	if strings.TrimSpace(p.PrepTime) == "" {
		p.PrepTime = DefaultPlaceholder
	}
	if strings.TrimSpace(p.CookTime) == "" {
		p.CookTime = DefaultPlaceholder
	}
	if strings.TrimSpace(p.Servings) == "" {
		p.Servings = DefaultPlaceholder
	}
	return p
}

func ingredients(meal mealdb.Meal) []string {
	out := make([]string, 0, mealdb.MaxIngredients)
	for i := 1; i <= mealdb.MaxIngredients; i++ {
		name := presentValue(meal.Ingredient(i))
		if name == "" {
			continue
		}
		if measure := presentValue(meal.Measure(i)); measure != "" {
			out = append(out, measure+" "+name)
			continue
		}
		out = append(out, name)
	}
	return out
}

// presentValue trims raw and reports "" for blank or "null" values.
func presentValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == nullToken {
		return ""
	}
	return trimmed
}

func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func tags(raw string) []string {
	raw = presentValue(raw)
	if raw == "" {
		return nil
	}
	caser := cases.Title(language.English)
	var out []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, caser.String(tag))
		}
	}
	return out
}
