package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
	"github.com/DianaCarolina3/recipes/internal/types"
)

// RecipeService handles recipe operations. Ownership is checked against the
// persisted author, never against client input; partial updates go through
// the child reconciler inside a single transaction.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create persists a new recipe with its children. The author is always the
// authenticated caller.
func (s *RecipeService) Create(ctx context.Context, authorID uuid.UUID, in types.RecipeCreateInput) (*model.Recipe, error) {
	if authorID == uuid.Nil {
		return nil, apperr.Unauthenticated("authentication required")
	}

	var category model.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category")
		}
		return nil, apperr.Internal(err)
	}

	recipe := model.Recipe{
		Title:      in.Title,
		AuthorID:   authorID,
		CategoryID: in.CategoryID,
	}
	if in.Description != nil {
		recipe.Description = *in.Description
	}
	if in.Difficulty != nil {
		recipe.Difficulty = *in.Difficulty
	}
	if in.Image != nil {
		recipe.Image = *in.Image
	}
	recipe.PrepTime = in.PrepTime
	recipe.CookTime = in.CookTime
	recipe.Servings = in.Servings

	for _, ing := range in.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, model.Ingredient{
			Name:     ing.Name,
			Quantity: deref(ing.Quantity),
			Unit:     deref(ing.Unit),
		})
	}
	for _, st := range in.Steps {
		recipe.Steps = append(recipe.Steps, model.Step{
			Order:       st.Order,
			Description: st.Description,
		})
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, recipe.ID)
}

// Get retrieves a recipe with its author, category, and children.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Recipe")
		}
		return nil, apperr.Internal(err)
	}
	return &recipe, nil
}

// List returns all recipes with their children.
func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order ASC") }).
		Find(&recipes).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return recipes, nil
}

// Update applies a partial update on behalf of caller. Scalar fields are
// overwritten when present; ingredient and step collections are reconciled
// against the persisted children by natural key, all in one transaction.
func (s *RecipeService) Update(ctx context.Context, id, caller uuid.UUID, role string, in types.RecipeUpdateInput) (*model.Recipe, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canMutate(caller, role, existing.AuthorID); err != nil {
		return nil, err
	}

	updates := scalarUpdates(in)
	ingredientOps := ReconcileIngredients(existing.Ingredients, in.Ingredients)
	stepOps := ReconcileSteps(existing.Steps, in.Steps)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		for _, op := range ingredientOps {
			switch op.Op {
			case OpUpdate:
				err := tx.Model(&model.Ingredient{}).Where("id = ?", op.Ingredient.ID).
					Updates(map[string]interface{}{"quantity": op.Ingredient.Quantity, "unit": op.Ingredient.Unit}).Error
				if err != nil {
					return err
				}
			case OpInsert:
				ing := op.Ingredient
				ing.RecipeID = id
				if err := tx.Create(&ing).Error; err != nil {
					return err
				}
			}
		}
		for _, op := range stepOps {
			switch op.Op {
			case OpUpdate:
				err := tx.Model(&model.Step{}).Where("id = ?", op.Step.ID).
					Update("description", op.Step.Description).Error
				if err != nil {
					return err
				}
			case OpInsert:
				st := op.Step
				st.RecipeID = id
				if err := tx.Create(&st).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return s.Get(ctx, id)
}

// Delete removes a recipe and cascades to its children.
func (s *RecipeService) Delete(ctx context.Context, id, caller uuid.UUID, role string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := canMutate(caller, role, existing.AuthorID); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Step{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Recipe{}, "id = ?", id).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// SetImage stores the uploaded image URL on the recipe.
func (s *RecipeService) SetImage(ctx context.Context, id, caller uuid.UUID, role string, url string) (*model.Recipe, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canMutate(caller, role, existing.AuthorID); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Update("image", url).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return s.Get(ctx, id)
}

func scalarUpdates(in types.RecipeUpdateInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PrepTime != nil {
		updates["prep_time"] = *in.PrepTime
	}
	if in.CookTime != nil {
		updates["cook_time"] = *in.CookTime
	}
	if in.Servings != nil {
		updates["servings"] = *in.Servings
	}
	if in.Difficulty != nil {
		updates["difficulty"] = *in.Difficulty
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.CategoryID != nil {
		updates["category_id"] = in.CategoryID.String()
	}
	return updates
}
