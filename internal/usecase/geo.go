package usecase

import (
	"strconv"
	"strings"

	"github.com/GoArmGo/PhotoBase/internal/domain"
)

// parsePoint строит точку из явных координат. Пустое значение,
// плейсхолдер unknown или мусор дают ok == false.
func parsePoint(rawLat, rawLng, unknown string) (domain.Point, bool) {
	rawLat, rawLng = strings.TrimSpace(rawLat), strings.TrimSpace(rawLng)
	if rawLat == "" || rawLng == "" || rawLat == unknown || rawLng == unknown {
		return domain.Point{}, false
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return domain.Point{}, false
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return domain.Point{}, false
	}

	p := domain.Point{Lat: lat, Lng: lng}
	return p, p.Valid()
}
