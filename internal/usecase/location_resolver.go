package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
	"github.com/GoArmGo/PhotoBase/internal/metrics"
)

type locationResolver struct {
	geocoder  ports.Geocoder
	publisher ports.GeocodePublisher
	unknown   string
	logger    *slog.Logger
}

// NewLocationResolver создает резолвер; publisher может быть nil,
// тогда адреса без точки просто остаются без нее.
func NewLocationResolver(geocoder ports.Geocoder, publisher ports.GeocodePublisher, unknownPlaceholder string, logger *slog.Logger) LocationResolver {
	return &locationResolver{
		geocoder:  geocoder,
		publisher: publisher,
		unknown:   unknownPlaceholder,
		logger:    logger,
	}
}

// Resolve: явные координаты без обращения к сети, иначе одна попытка геокодирования.
func (r *locationResolver) Resolve(ctx context.Context, in AddressInput) *domain.Point {
	if p, ok := parsePoint(in.Lat, in.Lng, r.unknown); ok {
		metrics.GeocodingTotal.WithLabelValues("explicit").Inc()
		return &p
	}

	address := domain.Location{Street: in.Street, City: in.City, ZipCode: in.ZipCode}.FullAddress()
	p, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		metrics.GeocodingTotal.WithLabelValues("failed").Inc()
		r.logger.Warn("geocoding failed, location stays without point", "address", address, "error", err)
		return nil
	}

	metrics.GeocodingTotal.WithLabelValues("resolved").Inc()
	return &p
}

func (r *locationResolver) AfterSave(ctx context.Context, location *domain.Location) {
	if location == nil || location.HasPoint() || r.publisher == nil {
		return
	}

	err := r.publisher.PublishGeocodeRequest(ctx, payloads.GeocodePayload{
		LocationID: location.ID,
		Address:    location.FullAddress(),
	})
	if err != nil {
		r.logger.Warn("failed to enqueue geocode request", "location_id", location.ID, "error", err)
	}
}
