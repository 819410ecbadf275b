package api

import (
	"encoding/xml"
	"log/slog"
	"net/http"
)

// Outcome is the result of one pass through the webhook pipeline. Every
// outcome is acknowledged with 200; Twilio only reads the message text.
type Outcome int

const (
	OutcomeStored Outcome = iota
	OutcomeDBError
	OutcomeServerError
)

const (
	msgStored      = "✅ Location stored!"
	msgDBError     = "❌ DB Error"
	msgServerError = "❌ Server error"
	msgForbidden   = "❌ Forbidden"
)

func (o Outcome) Message() string {
	switch o {
	case OutcomeStored:
		return msgStored
	case OutcomeDBError:
		return msgDBError
	default:
		return msgServerError
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeStored:
		return "stored"
	case OutcomeDBError:
		return "db_error"
	default:
		return "server_error"
	}
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func writeTwiML(w http.ResponseWriter, status int, message string) {
	out, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		slog.Error("Error marshalling TwiML", "error", err)
		out = []byte("<Response></Response>")
	}
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(status)
	w.Write(out)
}
