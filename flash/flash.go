// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const CookieName = "flash"

var (
	ErrInvalidSignature = errors.New("invalid flash signature")
	ErrMalformed        = errors.New("malformed flash cookie")
)

// Message is a one-shot notice shown on the next rendered page
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Sign creates an HMAC-SHA256 signature of value
func Sign(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cookie-safe values
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// Encode serializes and signs a message as "<payload>.<signature>"
func Encode(msg Message, secret string) (string, error) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to encode flash: %w", err)
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + Sign(payload, secret), nil
}

// Decode verifies the signature and returns the message
func Decode(value, secret string) (Message, error) {
	payload, sig, ok := strings.Cut(value, ".")
	if !ok {
		return Message{}, ErrMalformed
	}
	if !hmac.Equal([]byte(sig), []byte(Sign(payload, secret))) {
		return Message{}, ErrInvalidSignature
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Message{}, ErrMalformed
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, ErrMalformed
	}
	return msg, nil
}

// Set stores a message for the next request
func Set(w http.ResponseWriter, secret, category, text string) error {
	value, err := Encode(Message{Category: category, Text: text}, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending message, if any, and clears it.
// A tampered cookie is dropped and reported as no message.
func Pop(w http.ResponseWriter, r *http.Request, secret string) *Message {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	msg, err := Decode(c.Value, secret)
	if err != nil {
		return nil
	}
	return &msg
}
