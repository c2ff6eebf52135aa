package domain

import (
	"time"

	"github.com/google/uuid"
)

// Photo представляет загруженное фотографом изображение,
// соответствует таблице photos в бд
type Photo struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	PhotographerID uuid.UUID  `json:"photographer_id" db:"photographer_id" gorm:"type:uuid"`
	Title          string     `json:"title" db:"title"`
	Description    string     `json:"description" db:"description"`
	ImageKey       string     `json:"-" db:"image_key"`
	ImageURL       string     `json:"image" db:"image_url"`
	Status         Status     `json:"-" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	Categories     []Category `json:"categories,omitempty" db:"-" gorm:"many2many:photo_categories"`
}

func (Photo) TableName() string {
	return "photos"
}

// IsActive — фото не отключено и не удалено.
func (p Photo) IsActive() bool {
	return p.Status.IsActive()
}

// RankedPhoto — фото вместе с количеством лайков.
type RankedPhoto struct {
	Photo
	LikeCount int64 `json:"like_count" db:"like_count"`
}

// PhotoCategory — связующая модель Many-to-Many между Photo и Category
type PhotoCategory struct {
	PhotoID    uuid.UUID `json:"photo_id"`
	CategoryID uuid.UUID `json:"category_id"`
}

func (PhotoCategory) TableName() string {
	return "photo_categories"
}
