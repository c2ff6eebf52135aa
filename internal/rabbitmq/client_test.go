package rabbitmq

import (
	"context"
	"errors"
	"testing"

	"github.com/GoArmGo/PhotoBase/internal/logger"
	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked++
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked++
	f.requeue = f.requeue || requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func TestHandleDelivery(t *testing.T) {
	locationID := uuid.New()

	tests := []struct {
		name           string
		body           string
		handlerErr     error
		expectedCalls  int
		expectedAcked  int
		expectedNacked int
	}{
		{
			name:          "Processed",
			body:          `{"location_id":"` + locationID.String() + `","address":"Invalidenstr. 1, Berlin, 10115"}`,
			expectedCalls: 1,
			expectedAcked: 1,
		},
		{
			name:           "Malformed JSON",
			body:           `{"location_id":`,
			expectedNacked: 1,
		},
		{
			name:           "Missing location id",
			body:           `{"address":"Berlin"}`,
			expectedNacked: 1,
		},
		{
			name:           "Handler failure",
			body:           `{"location_id":"` + locationID.String() + `"}`,
			handlerErr:     errors.New("geocoder down"),
			expectedCalls:  1,
			expectedNacked: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAcknowledger{}
			calls := 0
			handler := func(ctx context.Context, p payloads.GeocodePayload) error {
				calls++
				assert.Equal(t, locationID, p.LocationID)
				return tt.handlerErr
			}

			handleDelivery(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(tt.body)}, handler, logger.Discard())

			assert.Equal(t, tt.expectedCalls, calls)
			assert.Equal(t, tt.expectedAcked, ack.acked)
			assert.Equal(t, tt.expectedNacked, ack.nacked)
			assert.False(t, ack.requeue)
		})
	}
}
