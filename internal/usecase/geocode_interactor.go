package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
	"github.com/GoArmGo/PhotoBase/internal/metrics"
)

type geocodeUseCase struct {
	locations ports.LocationStorage
	geocoder  ports.Geocoder
	logger    *slog.Logger
}

// NewGeocodeUseCase создает обработчик задач воркера геокодирования
func NewGeocodeUseCase(locations ports.LocationStorage, geocoder ports.Geocoder, logger *slog.Logger) GeocodeUseCase {
	return &geocodeUseCase{locations: locations, geocoder: geocoder, logger: logger}
}

// HandleGeocodeRequest дозаполняет точку адреса. Адрес берется из бд,
// а не из сообщения: он мог измениться после постановки задачи.
func (uc *geocodeUseCase) HandleGeocodeRequest(ctx context.Context, payload payloads.GeocodePayload) error {
	location, err := uc.locations.GetLocationByID(ctx, payload.LocationID)
	if err != nil {
		return fmt.Errorf("worker: get location %s: %w", payload.LocationID, err)
	}
	if location.HasPoint() {
		uc.logger.Info("location already has a point, skipping", "location_id", location.ID)
		return nil
	}

	point, err := uc.geocoder.Geocode(ctx, location.FullAddress())
	if err != nil {
		metrics.GeocodingTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("worker: geocode location %s: %w", location.ID, err)
	}
	metrics.GeocodingTotal.WithLabelValues("resolved").Inc()

	if err := uc.locations.UpdateLocationPoint(ctx, location.ID, point); err != nil {
		return fmt.Errorf("worker: update location %s: %w", location.ID, err)
	}

	uc.logger.Info("location point resolved", "location_id", location.ID, "lat", point.Lat, "lng", point.Lng)
	return nil
}
