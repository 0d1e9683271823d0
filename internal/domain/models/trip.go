package models

import (
	"strings"
	"time"
)

// VehicleModel identifies the seat topology of the vehicle serving a trip.
type VehicleModel string

const (
	VehicleSingleDeck VehicleModel = "LD"
	VehicleDoubleDeck VehicleModel = "DD"
	VehicleVan        VehicleModel = "VAN"
)

// ParseVehicleModel normalizes a stored model code. Unknown codes are returned
// as-is so the layout catalog can reject them.
func ParseVehicleModel(raw string) VehicleModel {
	return VehicleModel(strings.ToUpper(strings.TrimSpace(raw)))
}

// Trip is read-only from the seating core.
type Trip struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Destination   string       `json:"destination"`
	VehicleModel  VehicleModel `json:"vehicle_model"`
	Capacity      int          `json:"capacity"`
	DepartureDate *time.Time   `json:"departure_date,omitempty"`
	ReturnDate    *time.Time   `json:"return_date,omitempty"`
}
