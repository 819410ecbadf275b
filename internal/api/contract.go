package api

type DeviceEvent struct {
	FromNumber *string  `json:"from_number"`
	Message    string   `json:"message"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	CreatedAt  string   `json:"created_at"`
}

type GetDeviceEventsResponse struct {
	Events []DeviceEvent `json:"events"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
