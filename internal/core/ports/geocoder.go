package ports

import (
	"context"
	"errors"

	"github.com/GoArmGo/PhotoBase/internal/domain"
)

// ErrNoGeocodingResult — геокодер ответил, но кандидатов нет.
var ErrNoGeocodingResult = errors.New("no geocoding result")

// Geocoder превращает адрес в свободной форме в координаты лучшего совпадения.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Point, error)
}
