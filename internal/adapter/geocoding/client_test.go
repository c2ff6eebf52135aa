package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func newTestClient(t *testing.T, status int, body string) (*GoogleMapsClient, *string) {
	t.Helper()

	var gotAddress string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewGoogleMapsClient("AIza-test-key", logger.Discard(), maps.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return c, &gotAddress
}

func TestGeocode(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedLat float64
		expectedLng float64
		expectedErr error
		expectErr   bool
	}{
		{
			name:   "First candidate wins",
			status: http.StatusOK,
			body: `{"status":"OK","results":[
				{"geometry":{"location":{"lat":52.5321,"lng":13.3849}}},
				{"geometry":{"location":{"lat":48.1,"lng":11.5}}}
			]}`,
			expectedLat: 52.5321,
			expectedLng: 13.3849,
		},
		{
			name:        "Zero results",
			status:      http.StatusOK,
			body:        `{"status":"ZERO_RESULTS","results":[]}`,
			expectedErr: ports.ErrNoGeocodingResult,
		},
		{
			name:      "Denied",
			status:    http.StatusOK,
			body:      `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, gotAddress := newTestClient(t, tt.status, tt.body)

			point, err := c.Geocode(context.Background(), "Invalidenstr. 117, Berlin, 10115")
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedLat, point.Lat)
				assert.Equal(t, tt.expectedLng, point.Lng)
				assert.Equal(t, "Invalidenstr. 117, Berlin, 10115", *gotAddress)
			}
		})
	}
}

func TestGeocodeEmptyAddress(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"status":"OK","results":[]}`)

	_, err := c.Geocode(context.Background(), "  ")
	assert.Error(t, err)
}
