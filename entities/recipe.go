package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Recipe struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title         string    `gorm:"size:100;not null;uniqueIndex:uq_recipes_author_id_title;check:ck_recipes_title_required,length(trim(title)) > 0" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Duration      int       `gorm:"not null;check:ck_recipes_duration_valid,duration > 0" json:"duration"`
	ServingsCount int       `gorm:"not null;default:1;check:ck_recipes_servings_count_valid,servings_count > 0" json:"servings_count"`
	ImageURL      string    `json:"image_url,omitempty"`
	AuthorID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recipes_author_id_title" json:"author_id"`

	Author            *User               `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Steps             []*RecipeStep       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe_ingredients,omitempty"`
	RecipeCategories  []*RecipeCategory   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe_categories,omitempty"`
	Timestamp
}

func (r *Recipe) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type RecipeStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	StepNumber  int       `gorm:"not null;check:ck_recipe_steps_step_number_valid,step_number >= 1" json:"step_number"`
	Description string    `gorm:"type:text;not null;check:ck_recipe_steps_description_required,length(trim(description)) > 0" json:"description"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

func (s *RecipeStep) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Link tables keyed by the pair of foreign ids; no independent identity.

type RecipeIngredient struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`

	Recipe   *Recipe   `gorm:"foreignKey:RecipeID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
