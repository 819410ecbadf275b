package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"sms-location-webhook/internal/api"
)

// Sends one fake Twilio SMS to a running service and prints the TwiML reply
// followed by the stored events for the sender.
func main() {
	baseURL := flag.String("url", "http://localhost:3000", "service base URL")
	from := flag.String("from", "+15551234567", "sender number")
	body := flag.String("body", "CPR,12.9173,77.6043", "message body")
	flag.Parse()

	form := url.Values{"From": {*from}, "Body": {*body}}
	req, err := http.NewRequest(http.MethodPost, *baseURL+api.WebhookPath, strings.NewReader(form.Encode()))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token := os.Getenv("TWILIO_AUTH_TOKEN"); token != "" {
		signed := os.Getenv("WEBHOOK_URL")
		if signed == "" {
			signed = *baseURL + api.WebhookPath
		}
		req.Header.Set(api.SignatureHeader, api.Signature(token, signed, form))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	reply, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Println("POST", api.WebhookPath, "status:", resp.Status)
	fmt.Println("Reply:", string(reply))

	start := time.Now().Add(-1 * time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(1 * time.Hour).UTC().Format(time.RFC3339)
	getURL := fmt.Sprintf("%s/device-events/%s?%s", *baseURL, url.PathEscape(*from),
		url.Values{"start": {start}, "end": {end}}.Encode())
	resp, err = http.Get(getURL)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	events, _ := io.ReadAll(resp.Body)
	fmt.Println("GET /device-events status:", resp.Status)
	fmt.Println(string(events))
}
