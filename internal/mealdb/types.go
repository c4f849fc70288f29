package mealdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxIngredients is the number of numbered ingredient/measure slots a record carries.
const MaxIngredients = 20

// Field names used by TheMealDB records.
const (
	FieldID           = "idMeal"
	FieldName         = "strMeal"
	FieldThumbnail    = "strMealThumb"
	FieldInstructions = "strInstructions"
	FieldCategory     = "strCategory"
	FieldArea         = "strArea"
	FieldTags         = "strTags"
	FieldYouTube      = "strYoutube"
	FieldSource       = "strSource"
)

// Meal is a raw record as returned by TheMealDB. The API uses a flat schema in
// which every value is either a string or null; nulls are dropped on decode so
// an absent key and a null value look the same to callers.
type Meal struct {
	fields map[string]string
}

// NewMeal builds a record from a field map. The map is copied.
func NewMeal(fields map[string]string) Meal {
	dup := make(map[string]string, len(fields))
	for k, v := range fields {
		dup[k] = v
	}
	return Meal{fields: dup}
}

// UnmarshalJSON keeps string values and ignores nulls and non-string values.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			continue
		}
		fields[key] = s
	}
	m.fields = fields
	return nil
}

// MarshalJSON writes the record back in the flat wire shape.
func (m Meal) MarshalJSON() ([]byte, error) {
	if m.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m.fields)
}

// Field returns the raw value stored under key, or "" when absent.
func (m Meal) Field(key string) string {
	return m.fields[key]
}

// ID returns the external identifier.
func (m Meal) ID() string { return strings.TrimSpace(m.Field(FieldID)) }

// Name returns the meal name.
func (m Meal) Name() string { return m.Field(FieldName) }

// Thumbnail returns the image URL.
func (m Meal) Thumbnail() string { return m.Field(FieldThumbnail) }

// Instructions returns the raw multi-line instruction text.
func (m Meal) Instructions() string { return m.Field(FieldInstructions) }

// Ingredient returns the raw ingredient name at the 1-based slot index.
func (m Meal) Ingredient(index int) string {
	return m.Field(fmt.Sprintf("strIngredient%d", index))
}

// Measure returns the raw measure at the 1-based slot index.
func (m Meal) Measure(index int) string {
	return m.Field(fmt.Sprintf("strMeasure%d", index))
}

// listResponse mirrors both /search.php and /lookup.php. TheMealDB returns
// {"meals": null} when nothing matches.
type listResponse struct {
	Meals []Meal `json:"meals"`
}
