package service

import (
	"time"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/models"
)

// recipeFields are the only fields a caller may set on a recipe, in the
// order they are reported when missing.
var recipeFields = []string{
	"name",
	"category",
	"directions",
	"isPublished",
	"publishDate",
	"ingredients",
	"imageUrl",
}

// ValidateRecipe checks an untyped payload for the required recipe fields
// and returns the names of the missing or invalid ones. isPublished must be
// an actual boolean; truthy stand-ins are rejected. A wholly absent payload
// reports just "recipe".
func ValidateRecipe(raw map[string]any) []string {
	if raw == nil {
		return []string{"recipe"}
	}

	var missing []string
	for _, field := range recipeFields {
		value, ok := raw[field]
		if !ok {
			missing = append(missing, field)
			continue
		}
		valid := false
		switch field {
		case "isPublished":
			_, valid = value.(bool)
		case "publishDate":
			valid = hasPublishDate(value)
		case "ingredients":
			valid = hasIngredients(value)
		default:
			s, ok := value.(string)
			valid = ok && s != ""
		}
		if !valid {
			missing = append(missing, field)
		}
	}
	return missing
}

// SanitizeRecipe projects exactly the allowed fields of a validated payload
// into a Recipe, discarding anything else the caller supplied (including a
// forged id). It is pure and idempotent; it assumes ValidateRecipe passed.
func SanitizeRecipe(raw map[string]any) models.Recipe {
	published, _ := raw["isPublished"].(bool)
	return models.Recipe{
		Name:        stringField(raw, "name"),
		Category:    stringField(raw, "category"),
		Directions:  stringField(raw, "directions"),
		IsPublished: published,
		PublishDate: parsePublishDate(raw["publishDate"]),
		Ingredients: stringSlice(raw["ingredients"]),
		ImageURL:    stringField(raw, "imageUrl"),
	}
}

func hasPublishDate(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case float64:
		return v != 0
	case int64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

func hasIngredients(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	default:
		return false
	}
}

func stringField(raw map[string]any, field string) string {
	s, _ := raw[field].(string)
	return s
}

func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// parsePublishDate accepts a unix-seconds number (the shape the list
// endpoint emits) or an RFC 3339 string.
func parsePublishDate(value any) time.Time {
	switch v := value.(type) {
	case float64:
		return time.Unix(int64(v), 0).UTC()
	case int64:
		return time.Unix(v, 0).UTC()
	case int:
		return time.Unix(int64(v), 0).UTC()
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
