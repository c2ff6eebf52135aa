package payloads

import "github.com/google/uuid"

// GeocodePayload — задача для воркера: определить точку для сохраненного адреса.
type GeocodePayload struct {
	LocationID uuid.UUID `json:"location_id"`
	Address    string    `json:"address"`
}
