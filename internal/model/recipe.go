package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Difficulty levels accepted for a recipe.
const (
	DifficultyLow    = "low"
	DifficultyMedium = "medium"
	DifficultyHigh   = "high"
)

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	PrepTime    *int           `json:"prep_time,omitempty"`
	CookTime    *int           `json:"cook_time,omitempty"`
	Servings    *int           `json:"servings,omitempty"`
	Difficulty  string         `gorm:"size:10" json:"difficulty,omitempty"`
	Image       string         `gorm:"size:255" json:"image,omitempty"`
	AuthorID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"author_id"`
	Author      *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CategoryID  uuid.UUID      `gorm:"type:varchar(36);not null" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Ingredients []Ingredient   `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	Steps       []Step         `gorm:"constraint:OnDelete:CASCADE" json:"steps"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient is identified within a recipe by its name, not by a surrogate id.
// An update that keeps the name targets the same row.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"-"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_recipe_ingredient_name" json:"-"`
	Name     string    `gorm:"size:100;not null;uniqueIndex:idx_recipe_ingredient_name" json:"name"`
	Quantity string    `gorm:"size:50" json:"quantity,omitempty"`
	Unit     string    `gorm:"size:50" json:"unit,omitempty"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Step is identified within a recipe by its declared order number.
type Step struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"-"`
	RecipeID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_recipe_step_order" json:"-"`
	Order       int       `gorm:"column:step_order;not null;uniqueIndex:idx_recipe_step_order" json:"order"`
	Description string    `gorm:"type:text;not null" json:"description"`
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
