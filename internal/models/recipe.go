package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONStringArray is a custom type for handling string arrays in a JSON column
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	Title        string          `gorm:"size:255;not null" json:"title"`
	Ingredients  JSONStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions string          `gorm:"type:text;not null" json:"instructions"`
	ImageURL     string          `gorm:"size:255" json:"image_url,omitempty"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Category     *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags         []Tag           `gorm:"many2many:recipe_tags" json:"tags"`

	// Populated from the ratings table on read, never stored.
	AverageRating float64 `gorm:"-" json:"average_rating"`
	RatingsCount  int64   `gorm:"-" json:"ratings_count"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
