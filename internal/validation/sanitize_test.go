package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDropsBlankScalars(t *testing.T) {
	in := map[string]any{
		"title":       "Tarta",
		"description": "",
		"image":       "   ",
		"servings":    nil,
		"prepTime":    float64(20),
	}

	out := Sanitize(in, nil)

	assert.Equal(t, map[string]any{
		"title":    "Tarta",
		"prepTime": float64(20),
	}, out)
}

func TestSanitizePassesBulkFieldsThrough(t *testing.T) {
	in := map[string]any{
		"title":       "",
		"ingredients": []any{},
		"steps":       nil,
	}

	out := Sanitize(in, []string{"ingredients", "steps"})

	assert.NotContains(t, out, "title")
	assert.Equal(t, []any{}, out["ingredients"])
	assert.Contains(t, out, "steps")
	assert.Nil(t, out["steps"])
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"title": "", "kept": "x"}

	Sanitize(in, nil)

	assert.Equal(t, map[string]any{"title": "", "kept": "x"}, in)
}

func TestSanitizeKeepsNonStringValues(t *testing.T) {
	in := map[string]any{
		"servings": float64(0),
		"flag":     false,
	}

	out := Sanitize(in, nil)

	assert.Equal(t, float64(0), out["servings"])
	assert.Equal(t, false, out["flag"])
}
