package domain

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm — средний радиус Земли, используемый для перевода углов в км.
const EarthRadiusKm = 6371.0088

// Point — географическая точка в SRID 4326.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid проверяет диапазоны широты и долготы.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// DistanceKm возвращает расстояние по большому кругу до другой точки.
func (p Point) DistanceKm(other Point) float64 {
	a := s2.LatLngFromDegrees(p.Lat, p.Lng)
	b := s2.LatLngFromDegrees(other.Lat, other.Lng)
	return a.Distance(b).Radians() * EarthRadiusKm
}

// Within сообщает, лежит ли точка в пределах radiusKm от центра.
func (p Point) Within(center Point, radiusKm float64) bool {
	return p.DistanceKm(center) <= radiusKm
}

// EWKT отдает точку в формате, который понимает PostGIS.
func (p Point) EWKT() string {
	return fmt.Sprintf("SRID=4326;POINT(%v %v)", p.Lng, p.Lat)
}
