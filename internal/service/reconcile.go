package service

import (
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/types"
)

// ChildOp classifies a reconciliation operation for a nested child record.
type ChildOp int

const (
	OpInsert ChildOp = iota
	OpUpdate
)

// IngredientOp targets an ingredient row. For updates, Ingredient carries the
// persisted row's ID and recipe id with the incoming quantity/unit; the name
// (natural key) is never modified.
type IngredientOp struct {
	Op         ChildOp
	Ingredient model.Ingredient
}

// StepOp targets a step row. For updates only the description changes; the
// order (natural key) stays as it is.
type StepOp struct {
	Op   ChildOp
	Step model.Step
}

// ReconcileIngredients matches incoming items against existing rows by name.
// Matches become in-place updates, the rest become inserts. Nothing is ever
// deleted: an item omitted from incoming means "leave as is". A nil incoming
// slice produces no operations. Applying the same incoming set to its own
// materialized result yields the same operations with identical values, so
// the algorithm is idempotent.
func ReconcileIngredients(existing []model.Ingredient, incoming []types.IngredientInput) []IngredientOp {
	if incoming == nil {
		return nil
	}
	byName := make(map[string]model.Ingredient, len(existing))
	for _, e := range existing {
		byName[e.Name] = e
	}

	ops := make([]IngredientOp, 0, len(incoming))
	for _, in := range incoming {
		if e, ok := byName[in.Name]; ok {
			if in.Quantity != nil {
				e.Quantity = *in.Quantity
			}
			if in.Unit != nil {
				e.Unit = *in.Unit
			}
			ops = append(ops, IngredientOp{Op: OpUpdate, Ingredient: e})
			continue
		}
		ops = append(ops, IngredientOp{Op: OpInsert, Ingredient: model.Ingredient{
			Name:     in.Name,
			Quantity: deref(in.Quantity),
			Unit:     deref(in.Unit),
		}})
	}
	return ops
}

// ReconcileSteps matches incoming items against existing rows by order
// number. Same contract as ReconcileIngredients.
func ReconcileSteps(existing []model.Step, incoming []types.StepInput) []StepOp {
	if incoming == nil {
		return nil
	}
	byOrder := make(map[int]model.Step, len(existing))
	for _, e := range existing {
		byOrder[e.Order] = e
	}

	ops := make([]StepOp, 0, len(incoming))
	for _, in := range incoming {
		if e, ok := byOrder[in.Order]; ok {
			e.Description = in.Description
			ops = append(ops, StepOp{Op: OpUpdate, Step: e})
			continue
		}
		ops = append(ops, StepOp{Op: OpInsert, Step: model.Step{
			Order:       in.Order,
			Description: in.Description,
		}})
	}
	return ops
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
