package db

import "time"

// DeviceEvent is one row of device_events. FromNumber, Latitude and Longitude
// are stored as NULL when nil; Latitude and Longitude are nil together.
type DeviceEvent struct {
	ID         int64     `json:"-"`
	FromNumber *string   `json:"from_number"`
	Message    string    `json:"message"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}
