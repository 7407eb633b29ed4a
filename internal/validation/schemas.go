package validation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/types"
)

// Schema validates a sanitized raw object and returns a normalized, typed
// value, or a field-error report. BulkFields names the array fields the
// sanitizer must pass through untouched.
type Schema interface {
	BulkFields() []string
	Validate(in map[string]any) (any, apperr.FieldErrors)
}

type schema struct {
	object Object
	bulk   []string
	decode func(map[string]any) any
}

func (s schema) BulkFields() []string { return s.bulk }

func (s schema) Validate(in map[string]any) (any, apperr.FieldErrors) {
	out, errs := s.object.Validate(in)
	if errs != nil {
		return nil, errs
	}
	return s.decode(out), nil
}

var ingredientObject = Object{
	Fields: map[string]Field{
		"name":     {Rule: String(1), Required: true},
		"quantity": {Rule: Chain(String(0), Lowercase())},
		"unit":     {Rule: Chain(String(0), Lowercase())},
	},
}

var stepObject = Object{
	Fields: map[string]Field{
		"order":       {Rule: PositiveInt(), Required: true},
		"description": {Rule: String(1), Required: true},
	},
}

// RecipeCreate is the body schema of POST /recipes.
var RecipeCreate Schema = schema{
	bulk: []string{"ingredients", "steps"},
	object: Object{
		Fields: map[string]Field{
			"title":       {Rule: String(1), Required: true},
			"description": {Rule: String(0)},
			"prepTime":    {Rule: PositiveInt()},
			"cookTime":    {Rule: PositiveInt()},
			"servings":    {Rule: PositiveInt()},
			"difficulty":  {Rule: Enum(model.DifficultyLow, model.DifficultyMedium, model.DifficultyHigh)},
			"image":       {Rule: String(0)},
			"categoryId":  {Rule: UUIDString(), Required: true},
			"ingredients": {Rule: Array(1, "There must be at least one ingredient", Nested(ingredientObject)), Required: true},
			"steps":       {Rule: Array(1, "There must be at least one step", Nested(stepObject)), Required: true},
		},
	},
	decode: func(m map[string]any) any {
		return types.RecipeCreateInput{
			Title:       str(m, "title"),
			Description: strPtr(m, "description"),
			PrepTime:    intPtr(m, "prepTime"),
			CookTime:    intPtr(m, "cookTime"),
			Servings:    intPtr(m, "servings"),
			Difficulty:  strPtr(m, "difficulty"),
			Image:       strPtr(m, "image"),
			CategoryID:  uuidVal(m, "categoryId"),
			Ingredients: ingredients(m),
			Steps:       steps(m),
		}
	},
}

// RecipeUpdate is the body schema of PATCH /recipes/:id: everything optional,
// ingredient/step arrays unconstrained in length when present.
var RecipeUpdate Schema = schema{
	bulk: []string{"ingredients", "steps"},
	object: Object{
		Fields: map[string]Field{
			"title":       {Rule: String(1)},
			"description": {Rule: String(0)},
			"prepTime":    {Rule: PositiveInt()},
			"cookTime":    {Rule: PositiveInt()},
			"servings":    {Rule: PositiveInt()},
			"difficulty":  {Rule: Enum(model.DifficultyLow, model.DifficultyMedium, model.DifficultyHigh)},
			"image":       {Rule: String(0)},
			"categoryId":  {Rule: UUIDString()},
			"ingredients": {Rule: Array(0, "", Nested(ingredientObject))},
			"steps":       {Rule: Array(0, "", Nested(stepObject))},
		},
	},
	decode: func(m map[string]any) any {
		_, hasIngredients := m["ingredients"]
		_, hasSteps := m["steps"]
		return types.RecipeUpdateInput{
			Title:          strPtr(m, "title"),
			Description:    strPtr(m, "description"),
			PrepTime:       intPtr(m, "prepTime"),
			CookTime:       intPtr(m, "cookTime"),
			Servings:       intPtr(m, "servings"),
			Difficulty:     strPtr(m, "difficulty"),
			Image:          strPtr(m, "image"),
			CategoryID:     uuidPtr(m, "categoryId"),
			Ingredients:    ingredients(m),
			Steps:          steps(m),
			HasIngredients: hasIngredients,
			HasSteps:       hasSteps,
		}
	},
}

// UserCreate is the body schema of POST /users/register.
var UserCreate Schema = schema{
	object: Object{
		Fields: map[string]Field{
			"name":      {Rule: TrimmedString(2), Required: true},
			"lastname":  {Rule: TrimmedString(1), Required: true},
			"email":     {Rule: Email(), Required: true},
			"password":  {Rule: TrimmedString(4), Required: true},
			"cel":       {Rule: StringOrNumber()},
			"birthdate": {Rule: ISODate()},
			"photo":     {Rule: HTTPSURL(), Default: model.DefaultUserPhoto},
		},
	},
	decode: func(m map[string]any) any {
		return types.UserCreateInput{
			Name:      str(m, "name"),
			Lastname:  str(m, "lastname"),
			Email:     str(m, "email"),
			Password:  str(m, "password"),
			Cel:       strPtr(m, "cel"),
			Birthdate: timePtr(m, "birthdate"),
			Photo:     str(m, "photo"),
		}
	},
}

// UserUpdate is the body schema of PATCH /users/:id.
var UserUpdate Schema = schema{
	object: Object{
		Fields: map[string]Field{
			"name":      {Rule: TrimmedString(2)},
			"lastname":  {Rule: TrimmedString(1)},
			"email":     {Rule: Email()},
			"password":  {Rule: TrimmedString(4)},
			"cel":       {Rule: StringOrNumber()},
			"birthdate": {Rule: ISODate()},
			"photo":     {Rule: HTTPSURL()},
		},
	},
	decode: func(m map[string]any) any {
		return types.UserUpdateInput{
			Name:      strPtr(m, "name"),
			Lastname:  strPtr(m, "lastname"),
			Email:     strPtr(m, "email"),
			Password:  strPtr(m, "password"),
			Cel:       strPtr(m, "cel"),
			Birthdate: timePtr(m, "birthdate"),
			Photo:     strPtr(m, "photo"),
		}
	},
}

// UserFilter is the optional query schema of GET /users. At least one of name
// or lastname must be present when the query is non-empty.
var UserFilter Schema = schema{
	object: Object{
		Fields: map[string]Field{
			"name":     {Rule: TrimmedString(2)},
			"lastname": {Rule: TrimmedString(1)},
		},
		Refine: func(out map[string]any) error {
			if _, ok := out["name"]; ok {
				return nil
			}
			if _, ok := out["lastname"]; ok {
				return nil
			}
			return fmt.Errorf("Name or lastname is required")
		},
	},
	decode: func(m map[string]any) any {
		return types.UserFilter{
			Name:     strPtr(m, "name"),
			Lastname: strPtr(m, "lastname"),
		}
	},
}

// IDParams validates the :id path parameter.
var IDParams Schema = schema{
	object: Object{
		Fields: map[string]Field{
			"id": {Rule: UUIDString(), Required: true},
		},
	},
	decode: func(m map[string]any) any {
		return types.IDParam{ID: uuidVal(m, "id")}
	},
}

// Login is the body schema of POST /auth/login.
var Login Schema = schema{
	object: Object{
		Fields: map[string]Field{
			"email":    {Rule: Email(), Required: true},
			"password": {Rule: String(1), Required: true},
		},
	},
	decode: func(m map[string]any) any {
		return types.LoginInput{
			Email:    str(m, "email"),
			Password: str(m, "password"),
		}
	},
}

func str(m map[string]any, k string) string {
	if v, ok := m[k].(string); ok {
		return v
	}
	return ""
}

func strPtr(m map[string]any, k string) *string {
	if v, ok := m[k].(string); ok {
		return &v
	}
	return nil
}

func intPtr(m map[string]any, k string) *int {
	if v, ok := m[k].(int); ok {
		return &v
	}
	return nil
}

func timePtr(m map[string]any, k string) *time.Time {
	if v, ok := m[k].(time.Time); ok {
		return &v
	}
	return nil
}

func uuidVal(m map[string]any, k string) uuid.UUID {
	if v, ok := m[k].(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			return id
		}
	}
	return uuid.Nil
}

func uuidPtr(m map[string]any, k string) *uuid.UUID {
	if v, ok := m[k].(string); ok {
		if id, err := uuid.Parse(v); err == nil {
			return &id
		}
	}
	return nil
}

func ingredients(m map[string]any) []types.IngredientInput {
	items, ok := m["ingredients"].([]any)
	if !ok {
		return nil
	}
	out := make([]types.IngredientInput, 0, len(items))
	for _, item := range items {
		im := item.(map[string]any)
		out = append(out, types.IngredientInput{
			Name:     str(im, "name"),
			Quantity: strPtr(im, "quantity"),
			Unit:     strPtr(im, "unit"),
		})
	}
	return out
}

func steps(m map[string]any) []types.StepInput {
	items, ok := m["steps"].([]any)
	if !ok {
		return nil
	}
	out := make([]types.StepInput, 0, len(items))
	for _, item := range items {
		sm := item.(map[string]any)
		out = append(out, types.StepInput{
			Order:       sm["order"].(int),
			Description: str(sm, "description"),
		})
	}
	return out
}
