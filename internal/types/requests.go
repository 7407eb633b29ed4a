package types

import (
	"time"

	"github.com/google/uuid"
)

// IngredientInput is a validated ingredient item. Name is the natural key;
// quantity and unit arrive lowercased.
type IngredientInput struct {
	Name     string
	Quantity *string
	Unit     *string
}

// StepInput is a validated step item. Order is the natural key.
type StepInput struct {
	Order       int
	Description string
}

// RecipeCreateInput is the normalized body of POST /recipes.
type RecipeCreateInput struct {
	Title       string
	Description *string
	PrepTime    *int
	CookTime    *int
	Servings    *int
	Difficulty  *string
	Image       *string
	CategoryID  uuid.UUID
	Ingredients []IngredientInput
	Steps       []StepInput
}

// RecipeUpdateInput is the normalized body of PATCH /recipes/:id. Every field
// is optional; a nil Ingredients or Steps slice means the collection was not
// supplied and must be left untouched.
type RecipeUpdateInput struct {
	Title       *string
	Description *string
	PrepTime    *int
	CookTime    *int
	Servings    *int
	Difficulty  *string
	Image       *string
	CategoryID  *uuid.UUID
	Ingredients []IngredientInput
	Steps       []StepInput
	// HasIngredients and HasSteps distinguish "supplied empty" from absent.
	HasIngredients bool
	HasSteps       bool
}

// UserCreateInput is the normalized body of POST /users/register.
type UserCreateInput struct {
	Name      string
	Lastname  string
	Email     string
	Password  string
	Cel       *string
	Birthdate *time.Time
	Photo     string
}

// UserUpdateInput is the normalized body of PATCH /users/:id.
type UserUpdateInput struct {
	Name      *string
	Lastname  *string
	Email     *string
	Password  *string
	Cel       *string
	Birthdate *time.Time
	Photo     *string
}

// UserFilter is the optional query of GET /users.
type UserFilter struct {
	Name     *string
	Lastname *string
}

// IDParam is the validated :id path parameter.
type IDParam struct {
	ID uuid.UUID
}

// LoginInput is the normalized body of POST /auth/login.
type LoginInput struct {
	Email    string
	Password string
}
