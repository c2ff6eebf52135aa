package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Location — геокодированный адрес фотографа.
// Point равен nil только если геокодирование не удалось
// или координаты не были переданы.
type Location struct {
	ID             uuid.UUID `json:"id"`
	PhotographerID uuid.UUID `json:"photographer_id"`
	ZipCode        string    `json:"zip_code"`
	Country        string    `json:"country"`
	State          string    `json:"state"`
	City           string    `json:"city"`
	Street         string    `json:"street"`
	Point          *Point    `json:"point,omitempty"`
	Status         Status    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// DistanceKm заполняется только поисковыми запросами.
	DistanceKm *float64 `json:"distance,omitempty"`
}

// FullAddress форматирует адрес для геокодера: "street, city, zip".
func (l Location) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s", l.Street, l.City, l.ZipCode)
}

// HasPoint сообщает, удалось ли определить координаты.
func (l Location) HasPoint() bool {
	return l.Point != nil
}
