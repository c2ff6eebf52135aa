package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// DefaultCategoryImage используется, если у категории нет своей картинки.
const DefaultCategoryImage = "/static/categories/placeholder.png"

// Category представляет тег для группировки фото и фотографов,
// соответствует таблице categories в бд
type Category struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// RegenerateSlug пересчитывает slug из имени.
func (c *Category) RegenerateSlug() {
	c.Slug = slug.Make(c.Name)
}

// BeforeSave — gorm-хук: slug всегда строится из имени заново.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.RegenerateSlug()
	if c.Image == "" {
		c.Image = DefaultCategoryImage
	}
	return nil
}

// CategoryCount — категория с числом активных фото фотографа в ней.
type CategoryCount struct {
	Category Category `json:"category"`
	Photos   int64    `json:"photos"`
}
