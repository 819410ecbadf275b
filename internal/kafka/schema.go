package kafka

import "sms-location-webhook/internal/db"

// StructuredConnectRecord is the Kafka Connect JSON envelope published for
// every stored location report, so a JDBC sink can consume the topic as is.
type StructuredConnectRecord struct {
	Schema  Schema         `json:"schema"`
	Payload DeviceLocation `json:"payload"`
}

type DeviceLocation struct {
	FromNumber *string  `json:"from_number"`
	Message    string   `json:"message"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
}

var StructuredSchema = Schema{
	Type:     "struct",
	Name:     "DeviceLocation",
	Optional: false,
	Fields: []Field{
		{Field: "from_number", Type: "string", Optional: true},
		{Field: "message", Type: "string"},
		{Field: "latitude", Type: "double", Optional: true},
		{Field: "longitude", Type: "double", Optional: true},
	},
}

func NewRecord(event db.DeviceEvent) StructuredConnectRecord {
	return StructuredConnectRecord{
		Schema: StructuredSchema,
		Payload: DeviceLocation{
			FromNumber: event.FromNumber,
			Message:    event.Message,
			Latitude:   event.Latitude,
			Longitude:  event.Longitude,
		},
	}
}
