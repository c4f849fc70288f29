package recipe

import "strings"

// PlaceholderImageURL is shown in place of a missing or broken image.
const PlaceholderImageURL = "https://placehold.co/400x300/CCCCCC/333?text=No+Image"

// Recipe is the normalized form of a TheMealDB record. Values are built only
// by Normalizer and treated as immutable afterwards.
type Recipe struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	ImageURL     string   `json:"image_url" yaml:"image_url"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`

	Category  string   `json:"category,omitempty" yaml:"category,omitempty"`
	Area      string   `json:"area,omitempty" yaml:"area,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	VideoURL  string   `json:"video_url,omitempty" yaml:"video_url,omitempty"`
	SourceURL string   `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	PrepTime string `json:"prep_time" yaml:"prep_time"`
	CookTime string `json:"cook_time" yaml:"cook_time"`
	Servings string `json:"servings" yaml:"servings"`
}

// Summary joins the ingredient list for one-line display.
func (r Recipe) Summary() string {
	return strings.Join(r.Ingredients, ", ")
}

// Image returns ImageURL, or the placeholder when the record has none.
func (r Recipe) Image() string {
	if strings.TrimSpace(r.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return r.ImageURL
}

// Clone returns a deep copy.
func (r Recipe) Clone() Recipe {
	r.Ingredients = cloneStrings(r.Ingredients)
	r.Instructions = cloneStrings(r.Instructions)
	r.Tags = cloneStrings(r.Tags)
	return r
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
