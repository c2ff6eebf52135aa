package geocoding

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/domain"
	"googlemaps.github.io/maps"
)

const defaultTimeout = 10 * time.Second

// GoogleMapsClient представляет клиент для Google Maps Geocoding API.
type GoogleMapsClient struct {
	client *maps.Client
	logger *slog.Logger
}

// NewGoogleMapsClient создает клиент; дополнительные опции используются в тестах
// для подмены адреса API.
func NewGoogleMapsClient(apiKey string, logger *slog.Logger, opts ...maps.ClientOption) (*GoogleMapsClient, error) {
	options := append([]maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: defaultTimeout}),
	}, opts...)

	c, err := maps.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("create google maps client: %w", err)
	}
	return &GoogleMapsClient{client: c, logger: logger}, nil
}

// Geocode возвращает координаты первого кандидата для адреса.
func (c *GoogleMapsClient) Geocode(ctx context.Context, address string) (domain.Point, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Point{}, fmt.Errorf("geocode: empty address")
	}

	start := time.Now()
	results, err := c.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return domain.Point{}, ports.ErrNoGeocodingResult
	}

	loc := results[0].Geometry.Location
	point := domain.Point{Lat: loc.Lat, Lng: loc.Lng}
	if !point.Valid() {
		return domain.Point{}, fmt.Errorf("geocode %q: provider returned invalid point %v", address, point)
	}

	c.logger.Debug("address geocoded",
		"address", address,
		"candidates", len(results),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return point, nil
}
