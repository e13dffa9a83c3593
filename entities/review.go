package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewStatus is a lookup table rather than an enum column so that
// moderation states can be added without a schema migration.
type ReviewStatus struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"size:20;not null" json:"name"`
}

func (s *ReviewStatus) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reviews_user_id_recipe_id" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reviews_user_id_recipe_id" json:"recipe_id"`
	Rating    int       `gorm:"not null;default:1;check:ck_reviews_rating_valid,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text;not null;check:ck_reviews_comment_required,length(trim(comment)) > 0" json:"comment"`
	StatusID  uuid.UUID `gorm:"type:uuid;not null" json:"status_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe       `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Status *ReviewStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
