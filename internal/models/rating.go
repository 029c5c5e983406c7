package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a single rating contribution for a recipe. Rows are append-only;
// the recipe's average is recomputed from them on read.
type Rating struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Value       int       `gorm:"not null;check:value >= 1 AND value <= 5" json:"value"`
	SubmittedBy string    `gorm:"size:64" json:"-"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (Rating) TableName() string {
	return "ratings"
}
