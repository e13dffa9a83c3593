package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"size:50;uniqueIndex;not null;check:ck_categories_name_required,length(trim(name)) > 0" json:"name"`
	IconURL string    `gorm:"not null" json:"icon_url"`

	RecipeCategories []*RecipeCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"size:100;uniqueIndex;not null;check:ck_ingredients_name_required,length(trim(name)) > 0" json:"name"`
	Calories float64   `gorm:"not null;check:ck_ingredients_calories_valid,calories >= 0" json:"calories"`
	IconURL  string    `gorm:"not null" json:"icon_url"`

	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:IngredientID" json:"-"`
	Timestamp
}

func (i *Ingredient) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
