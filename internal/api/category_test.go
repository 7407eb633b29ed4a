package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryListPublic(t *testing.T) {
	env := setupTestEnv(t)
	env.createCategory(t, "Postres")
	env.createCategory(t, "Bebidas")

	w := env.request(t, http.MethodGet, "/api/v1/categories", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var categories []struct {
		Name string `json:"name"`
	}
	decodeBody(t, w, &categories)
	require.Len(t, categories, 2)
	assert.Equal(t, "Bebidas", categories[0].Name)
	assert.Equal(t, "Postres", categories[1].Name)
}
