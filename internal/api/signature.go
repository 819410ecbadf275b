package api

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const SignatureHeader = "X-Twilio-Signature"

// Signature computes Twilio's request signature: base64 HMAC-SHA1 over the
// full URL followed by every POST parameter name and value, sorted by name.
func Signature(authToken, rawURL string, params url.Values) string {
	var b strings.Builder
	b.WriteString(rawURL)
	for _, key := range slices.Sorted(maps.Keys(params)) {
		values := slices.Clone(params[key])
		slices.Sort(values)
		for _, v := range values {
			b.WriteString(key)
			b.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func ValidSignature(authToken, rawURL string, params url.Values, signature string) bool {
	if signature == "" {
		return false
	}
	expected := Signature(authToken, rawURL, params)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyTwilioSignature rejects webhook calls that were not signed with
// authToken. webhookURL should be the public URL configured in Twilio; when
// empty it is rebuilt from the request, which only works without rewriting
// proxies in front.
func VerifyTwilioSignature(authToken, webhookURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			signed := webhookURL
			if signed == "" {
				signed = requestURL(r)
			}

			if err := r.ParseForm(); err != nil ||
				!ValidSignature(authToken, signed, r.PostForm, r.Header.Get(SignatureHeader)) {
				slog.WarnContext(r.Context(), "Rejected webhook with invalid signature",
					"remote_addr", r.RemoteAddr,
					"url", signed,
				)
				writeTwiML(w, http.StatusForbidden, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
