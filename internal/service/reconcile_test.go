package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/types"
)

func strp(s string) *string { return &s }

func TestReconcileIngredientsMatchesByName(t *testing.T) {
	existing := []model.Ingredient{
		{ID: uuid.New(), Name: "Harina", Quantity: "2", Unit: "tazas"},
		{ID: uuid.New(), Name: "Azucar", Quantity: "1", Unit: "taza"},
	}
	incoming := []types.IngredientInput{
		{Name: "Harina", Quantity: strp("3"), Unit: strp("tazas")},
		{Name: "Manzana", Quantity: strp("4")},
	}

	ops := ReconcileIngredients(existing, incoming)

	require.Len(t, ops, 2)

	assert.Equal(t, OpUpdate, ops[0].Op)
	assert.Equal(t, existing[0].ID, ops[0].Ingredient.ID)
	assert.Equal(t, "Harina", ops[0].Ingredient.Name)
	assert.Equal(t, "3", ops[0].Ingredient.Quantity)

	assert.Equal(t, OpInsert, ops[1].Op)
	assert.Equal(t, "Manzana", ops[1].Ingredient.Name)
	assert.Equal(t, "4", ops[1].Ingredient.Quantity)
}

func TestReconcileIngredientsOmittedItemsUntouched(t *testing.T) {
	existing := []model.Ingredient{
		{ID: uuid.New(), Name: "Harina"},
		{ID: uuid.New(), Name: "Azucar"},
	}

	ops := ReconcileIngredients(existing, []types.IngredientInput{{Name: "Harina"}})

	// Azucar is absent from incoming and produces no operation at all.
	require.Len(t, ops, 1)
	assert.Equal(t, "Harina", ops[0].Ingredient.Name)
}

func TestReconcileIngredientsNilIncomingIsNoop(t *testing.T) {
	existing := []model.Ingredient{{ID: uuid.New(), Name: "Harina"}}

	assert.Nil(t, ReconcileIngredients(existing, nil))
}

func TestReconcileIngredientsNilPointersPreserveValues(t *testing.T) {
	existing := []model.Ingredient{
		{ID: uuid.New(), Name: "Harina", Quantity: "2", Unit: "tazas"},
	}

	ops := ReconcileIngredients(existing, []types.IngredientInput{
		{Name: "Harina", Quantity: strp("3")},
	})

	require.Len(t, ops, 1)
	assert.Equal(t, "3", ops[0].Ingredient.Quantity)
	assert.Equal(t, "tazas", ops[0].Ingredient.Unit)
}

func TestReconcileIngredientsIdempotent(t *testing.T) {
	existing := []model.Ingredient{
		{ID: uuid.New(), Name: "Harina", Quantity: "2", Unit: "tazas"},
	}
	incoming := []types.IngredientInput{
		{Name: "Harina", Quantity: strp("3"), Unit: strp("tazas")},
		{Name: "Manzana", Quantity: strp("4"), Unit: strp("unidades")},
	}

	first := ReconcileIngredients(existing, incoming)

	// Materialize the first round's result and reconcile again.
	next := make([]model.Ingredient, 0, len(first))
	for _, op := range first {
		ing := op.Ingredient
		if ing.ID == uuid.Nil {
			ing.ID = uuid.New()
		}
		next = append(next, ing)
	}

	second := ReconcileIngredients(next, incoming)

	require.Len(t, second, len(first))
	for _, op := range second {
		assert.Equal(t, OpUpdate, op.Op)
	}
	assert.Equal(t, "3", second[0].Ingredient.Quantity)
	assert.Equal(t, "4", second[1].Ingredient.Quantity)
}

func TestReconcileStepsMatchesByOrder(t *testing.T) {
	existing := []model.Step{
		{ID: uuid.New(), Order: 1, Description: "Mezclar la harina"},
		{ID: uuid.New(), Order: 2, Description: "Hornear"},
	}
	incoming := []types.StepInput{
		{Order: 2, Description: "Hornear 40 minutos"},
		{Order: 3, Description: "Dejar enfriar"},
	}

	ops := ReconcileSteps(existing, incoming)

	require.Len(t, ops, 2)

	assert.Equal(t, OpUpdate, ops[0].Op)
	assert.Equal(t, existing[1].ID, ops[0].Step.ID)
	assert.Equal(t, 2, ops[0].Step.Order)
	assert.Equal(t, "Hornear 40 minutos", ops[0].Step.Description)

	assert.Equal(t, OpInsert, ops[1].Op)
	assert.Equal(t, 3, ops[1].Step.Order)
}

func TestReconcileStepsNilIncomingIsNoop(t *testing.T) {
	existing := []model.Step{{ID: uuid.New(), Order: 1, Description: "Mezclar"}}

	assert.Nil(t, ReconcileSteps(existing, nil))
}
