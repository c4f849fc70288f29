package recipe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/ladle/internal/mealdb"
)

func TestNormalize_Ingredients(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		expected []string
	}{
		{
			name: "measure prefixes ingredient",
			fields: map[string]string{
				"strIngredient1": "penne rigate", "strMeasure1": "1 pound",
				"strIngredient2": "olive oil", "strMeasure2": "1/4 cup",
			},
			expected: []string{"1 pound penne rigate", "1/4 cup olive oil"},
		},
		{
			name: "absent measure keeps bare ingredient in position",
			fields: map[string]string{
				"strIngredient1": "salt", "strMeasure1": "pinch",
				"strIngredient3": "2 cups",
				"strIngredient4": "basil", "strMeasure4": "handful",
			},
			expected: []string{"pinch salt", "2 cups", "handful basil"},
		},
		{
			name: "null sentinel and blanks are skipped",
			fields: map[string]string{
				"strIngredient1": "null", "strMeasure1": "1 tsp",
				"strIngredient2": "   ", "strMeasure2": "2 tbsp",
				"strIngredient3": " garlic ", "strMeasure3": "null",
				"strIngredient4": "", "strMeasure4": "",
			},
			expected: []string{"garlic"},
		},
		{
			name:     "no slots yields empty list",
			fields:   map[string]string{"idMeal": "1"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(mealdb.NewMeal(tt.fields))
			assert.Equal(t, tt.expected, got.Ingredients)
		})
	}
}

func TestNormalize_IngredientsNeverEmptyOrNull(t *testing.T) {
	values := []string{"", " ", "null", " null ", "flour", "1 cup"}
	for seed := 0; seed < 64; seed++ {
		fields := map[string]string{"idMeal": "1"}
		for i := 1; i <= mealdb.MaxIngredients; i++ {
			fields[fmt.Sprintf("strIngredient%d", i)] = values[(seed+i)%len(values)]
			fields[fmt.Sprintf("strMeasure%d", i)] = values[(seed*3+i)%len(values)]
		}
		got := Normalize(mealdb.NewMeal(fields)).Ingredients

		require.LessOrEqual(t, len(got), mealdb.MaxIngredients)
		for _, entry := range got {
			assert.NotEmpty(t, strings.TrimSpace(entry))
			assert.NotEqual(t, "null", entry)
			assert.NotContains(t, entry, "null")
		}
	}
}

func TestNormalize_Instructions(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "blank lines dropped", raw: "Step one.\n\nStep two.\n", expected: []string{"Step one.", "Step two."}},
		{name: "crlf trimmed", raw: "Boil water.\r\n  Add pasta.  \r\n", expected: []string{"Boil water.", "Add pasta."}},
		{name: "empty", raw: "", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(mealdb.NewMeal(map[string]string{mealdb.FieldInstructions: tt.raw}))
			assert.Equal(t, tt.expected, got.Instructions)
		})
	}
}

func TestNormalize_PassThroughFields(t *testing.T) {
	meal := mealdb.NewMeal(map[string]string{
		mealdb.FieldID:        " 52772 ",
		mealdb.FieldName:      "Teriyaki Chicken Casserole",
		mealdb.FieldThumbnail: "https://example.com/img.jpg",
		mealdb.FieldCategory:  "Chicken",
		mealdb.FieldArea:      "Japanese",
		mealdb.FieldTags:      "meat, casserole,,",
		mealdb.FieldYouTube:   "https://www.youtube.com/watch?v=4aZr5hZXP_s",
		mealdb.FieldSource:    "null",
	})

	got := Normalize(meal)

	assert.Equal(t, "52772", got.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", got.Name)
	assert.Equal(t, "https://example.com/img.jpg", got.Image())
	assert.Equal(t, "Chicken", got.Category)
	assert.Equal(t, "Japanese", got.Area)
	assert.Equal(t, []string{"Meat", "Casserole"}, got.Tags)
	assert.Equal(t, "https://www.youtube.com/watch?v=4aZr5hZXP_s", got.VideoURL)
	assert.Empty(t, got.SourceURL)
	assert.Equal(t, DefaultPlaceholder, got.PrepTime)
	assert.Equal(t, DefaultPlaceholder, got.CookTime)
	assert.Equal(t, DefaultPlaceholder, got.Servings)
}

func TestNormalizer_CustomPlaceholders(t *testing.T) {
	n := Normalizer{Placeholders: Placeholders{PrepTime: "?", Servings: "2"}}

	got := n.Normalize(mealdb.NewMeal(map[string]string{mealdb.FieldID: "1"}))

	assert.Equal(t, "?", got.PrepTime)
	assert.Equal(t, DefaultPlaceholder, got.CookTime)
	assert.Equal(t, "2", got.Servings)
}

func TestNormalizeAll_DropsRecordsWithoutID(t *testing.T) {
	meals := []mealdb.Meal{
		mealdb.NewMeal(map[string]string{mealdb.FieldID: "1", mealdb.FieldName: "A"}),
		mealdb.NewMeal(map[string]string{mealdb.FieldName: "no id"}),
		mealdb.NewMeal(map[string]string{mealdb.FieldID: "  ", mealdb.FieldName: "blank id"}),
		mealdb.NewMeal(map[string]string{mealdb.FieldID: "2", mealdb.FieldName: "B"}),
	}

	got, dropped := Normalizer{}.NormalizeAll(meals)

	require.Len(t, got, 2)
	assert.Equal(t, 2, dropped)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)

	empty, dropped := Normalizer{}.NormalizeAll(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Zero(t, dropped)
}

func TestRecipe_SummaryImageAndClone(t *testing.T) {
	r := Recipe{ID: "1", Ingredients: []string{"1 cup rice", "salt"}, Tags: []string{"Quick"}}

	assert.Equal(t, "1 cup rice, salt", r.Summary())
	assert.Equal(t, PlaceholderImageURL, r.Image())

	dup := r.Clone()
	dup.Ingredients[0] = "changed"
	dup.Tags[0] = "changed"
	assert.Equal(t, "1 cup rice", r.Ingredients[0])
	assert.Equal(t, "Quick", r.Tags[0])
	assert.Nil(t, dup.Instructions)
}
