package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"sms-location-webhook/internal/api"
	k "sms-location-webhook/internal/kafka"

	"github.com/segmentio/kafka-go"
)

// Steps:
// 1. Post a batch of SMS webhooks to a running service
// 2. Check every reply is the stored acknowledgment
// 3. Read the published records back from the Kafka topic
// 4. Query the read API for each sender and compare with what was sent

type sms struct {
	From string
	Body string
	// Located is whether the body should parse to coordinates.
	Located bool
}

var batch = []sms{
	{From: "+15550000001", Body: "CPR,12.9173,77.6043", Located: true},
	{From: "+15550000001", Body: "cpr , -33.8688 , 151.2093", Located: true},
	{From: "+15550000002", Body: "hello there", Located: false},
	{From: "+15550000002", Body: "CPR,12.9,77.6 trailing", Located: false},
}

const storedReply = "<Response><Message>✅ Location stored!</Message></Response>"

func main() {
	baseURL := envOr("E2E_BASE_URL", "http://localhost:3000")
	brokers := envOr("E2E_KAFKA_BROKERS", "localhost:9092")
	topic := envOr("E2E_KAFKA_TOPIC", "device-locations")
	startedAt := time.Now().Add(-time.Second).UTC()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(brokers, ","),
		Topic:       topic,
		GroupID:     fmt.Sprintf("e2e-%d", startedAt.UnixNano()),
		StartOffset: kafka.FirstOffset,
		MaxWait:     time.Second,
	})
	defer reader.Close()

	failures := 0
	for _, m := range batch {
		reply, err := post(baseURL, m)
		if err != nil {
			panic(err)
		}
		if reply != storedReply {
			fmt.Printf("FAIL reply for %q: %s\n", m.Body, reply)
			failures++
		}
	}
	fmt.Printf("Posted %d webhooks\n", len(batch))

	published := map[string]k.DeviceLocation{}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for len(published) < len(batch) {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				fmt.Printf("FAIL only %d/%d records published\n", len(published), len(batch))
				failures++
				break
			}
			panic(err)
		}
		if msg.Time.Before(startedAt) {
			continue
		}
		var record k.StructuredConnectRecord
		if err := json.Unmarshal(msg.Value, &record); err != nil {
			fmt.Printf("skipping undecodable record: %v\n", err)
			continue
		}
		published[record.Payload.Message] = record.Payload
	}

	for _, m := range batch {
		rec, ok := published[m.Body]
		if ok && (rec.Latitude != nil) != m.Located {
			fmt.Printf("FAIL published record for %q located=%v\n", m.Body, rec.Latitude != nil)
			failures++
		}
	}

	for _, from := range []string{"+15550000001", "+15550000002"} {
		events, err := timeline(baseURL, from, startedAt)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s has %d stored events\n", from, len(events))
		for _, e := range events {
			fmt.Printf("  %s %q lat=%v lng=%v\n", e.CreatedAt, e.Message, fmtFloat(e.Latitude), fmtFloat(e.Longitude))
		}
		if len(events) < 2 {
			fmt.Printf("FAIL expected at least 2 events for %s\n", from)
			failures++
		}
	}

	if failures > 0 {
		fmt.Printf("%d checks failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("All checks passed")
}

func post(baseURL string, m sms) (string, error) {
	form := url.Values{"From": {m.From}, "Body": {m.Body}}
	req, err := http.NewRequest(http.MethodPost, baseURL+api.WebhookPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token := os.Getenv("TWILIO_AUTH_TOKEN"); token != "" {
		req.Header.Set(api.SignatureHeader, api.Signature(token, envOr("WEBHOOK_URL", baseURL+api.WebhookPath), form))
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	return string(body), err
}

func timeline(baseURL, from string, since time.Time) ([]api.DeviceEvent, error) {
	q := url.Values{
		"start": {since.Format(time.RFC3339)},
		"end":   {time.Now().Add(time.Minute).UTC().Format(time.RFC3339)},
	}
	resp, err := http.Get(baseURL + "/device-events/" + url.PathEscape(from) + "?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var result api.GetDeviceEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result.Events, nil
}

func fmtFloat(f *float64) string {
	if f == nil {
		return "null"
	}
	return fmt.Sprintf("%g", *f)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
