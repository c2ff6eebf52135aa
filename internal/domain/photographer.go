package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Photographer — зарегистрированный продавец фотографий.
type Photographer struct {
	ID                    uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID  `json:"user_id" gorm:"type:uuid"`
	CompanyName           string     `json:"company_name"`
	Website               string     `json:"website"`
	PhoneNumber           string     `json:"phone_number"`
	MobileNumber          string     `json:"mobile_number"`
	VATNumber             string     `json:"-" gorm:"column:vat_number"`
	EmailNotificationCode string     `json:"-"`
	BirthDate             time.Time  `json:"birth_date" gorm:"type:date"`
	ProfileImage          string     `json:"profile_image"`
	NewsLetter            bool       `json:"news_letter"`
	IsMock                bool       `json:"-"`
	Status                Status     `json:"-"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	User                  *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Categories            []Category `json:"categories,omitempty" gorm:"many2many:photographer_categories"`

	// Локации принадлежат sqlx-хранилищу (PostGIS), gorm их не трогает.
	Locations []Location `json:"locations,omitempty" gorm:"-"`
}

func (Photographer) TableName() string {
	return "photographers"
}

// FullName собирает имя из учетной записи.
func (p Photographer) FullName() string {
	if p.User == nil {
		return p.CompanyName
	}
	return fmt.Sprintf("%s %s", p.User.FirstName, p.User.LastName)
}

// PhotographerCategory — связующая модель Many-to-Many между Photographer и Category
type PhotographerCategory struct {
	PhotographerID uuid.UUID `json:"photographer_id"`
	CategoryID     uuid.UUID `json:"category_id"`
}

func (PhotographerCategory) TableName() string {
	return "photographer_categories"
}
