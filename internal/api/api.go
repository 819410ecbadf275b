package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sms-location-webhook/internal/db"
	"sms-location-webhook/internal/location"

	"github.com/go-chi/chi/v5"
)

type repository interface {
	InsertDeviceEvent(ctx context.Context, event db.DeviceEvent) error
	LoadEventsBetween(ctx context.Context, fromNumber string, start, end time.Time) ([]db.DeviceEvent, error)
}

type publisher interface {
	Publish(ctx context.Context, event db.DeviceEvent) error
}

type API struct {
	DB        repository
	Publisher publisher

	authToken  string
	webhookURL string
}

type Config struct {
	DB repository
	// Publisher is optional; stored events are not fanned out when nil.
	Publisher publisher
	// AuthToken enables X-Twilio-Signature checks on the webhook.
	AuthToken string
	// WebhookURL is the public URL Twilio signs. Derived from the request when empty.
	WebhookURL string
}

func New(cfg Config) *API {
	return &API{
		DB:         cfg.DB,
		Publisher:  cfg.Publisher,
		authToken:  cfg.AuthToken,
		webhookURL: cfg.WebhookURL,
	}
}

func (a *API) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	outcome := a.processWebhook(r)
	slog.InfoContext(r.Context(), "Webhook handled", "outcome", outcome.String())
	writeTwiML(w, http.StatusOK, outcome.Message())
}

// processWebhook runs parse, build and persist for one inbound SMS. Panics are
// turned into OutcomeServerError so the caller always has something to send.
func (a *API) processWebhook(r *http.Request) (outcome Outcome) {
	ctx := r.Context()
	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "Webhook error", "panic", rec)
			outcome = OutcomeServerError
		}
	}()

	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(ctx, "Webhook error", "error", err)
		return OutcomeServerError
	}

	event := newDeviceEvent(r.PostForm.Get("From"), r.PostForm.Get("Body"))

	if err := a.DB.InsertDeviceEvent(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Insert error", "error", err)
		return OutcomeDBError
	}
	slog.InfoContext(ctx, "Stored device event",
		"from_number", derefString(event.FromNumber),
		"has_location", event.Latitude != nil,
	)

	// Best effort: the event is already stored, so a publish failure does
	// not change the reply.
	if a.Publisher != nil {
		if err := a.Publisher.Publish(ctx, event); err != nil {
			slog.WarnContext(ctx, "Publish error", "error", err)
		}
	}
	return OutcomeStored
}

func newDeviceEvent(from, body string) db.DeviceEvent {
	event := db.DeviceEvent{Message: strings.TrimSpace(body)}
	if f := strings.TrimSpace(from); f != "" {
		event.FromNumber = &f
	}
	if coords, ok := location.Parse(event.Message); ok {
		event.Latitude = &coords.Latitude
		event.Longitude = &coords.Longitude
	}
	return event
}

func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Backend is running ✅"))
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{OK: true})
}

func (a *API) GetDeviceEvents(w http.ResponseWriter, r *http.Request) {
	// chi matches against RawPath when the request carried escapes, so the
	// param is still encoded only in that case.
	fromNumber := chi.URLParam(r, "from_number")
	var err error
	if r.URL.RawPath != "" {
		fromNumber, err = url.PathUnescape(fromNumber)
	}
	if err != nil || fromNumber == "" {
		http.Error(w, "invalid from_number", http.StatusBadRequest)
		return
	}
	startTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "invalid start timestamp", http.StatusBadRequest)
		return
	}
	endTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "invalid end timestamp", http.StatusBadRequest)
		return
	}

	events, err := a.DB.LoadEventsBetween(r.Context(), fromNumber, startTime, endTime)
	if err != nil {
		slog.ErrorContext(r.Context(), "Error loading device events", "error", err)
		http.Error(w, "failed to load device events", http.StatusInternalServerError)
		return
	}

	resp := GetDeviceEventsResponse{Events: make([]DeviceEvent, 0, len(events))}
	for _, event := range events {
		resp.Events = append(resp.Events, DeviceEvent{
			FromNumber: event.FromNumber,
			Message:    event.Message,
			Latitude:   event.Latitude,
			Longitude:  event.Longitude,
			CreatedAt:  event.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
