// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
	"github.com/Tasmia-create/campus-event-prototype/middleware"
	"github.com/Tasmia-create/campus-event-prototype/models"
	"github.com/Tasmia-create/campus-event-prototype/views"
)

type EventHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewEventHandler(store *db.Store, cfg cliparse.Config) *EventHandler {
	return &EventHandler{store: store, cfg: cfg}
}

// ListEvents handles GET /
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	var events []models.Event
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		var err error
		events, err = listEvents(r.Context(), tx)
		return err
	})
	if err != nil {
		databaseError(w, r, "failed to list events", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.Home, "Events", events)
}

// AddEventForm handles GET /add_event
func (h *EventHandler) AddEventForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, h.cfg, http.StatusOK, views.AddEvent, "Add Event", nil)
}

// AddEvent handles POST /add_event
func (h *EventHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	form := models.AddEventForm{
		Title: r.PostFormValue("title"),
		Type:  r.PostFormValue("type"),
		Date:  r.PostFormValue("date"),
	}
	if err := middleware.Validate(form); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "title, type and date are required")
		return
	}

	var eventID int64
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		return tx.QueryRowContext(r.Context(), `
			INSERT INTO Events (title, type, date)
			VALUES ($1, $2, $3)
			RETURNING event_id
		`, form.Title, form.Type, form.Date).Scan(&eventID)
	})
	if err != nil {
		databaseError(w, r, "failed to insert event", err)
		return
	}

	slog.Info("event created", "event_id", eventID, "title", form.Title)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess, "Event added successfully!", "/")
}

// EventDetail handles GET /event/{id}
func (h *EventHandler) EventDetail(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	var event models.Event
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		var err error
		event, err = getEvent(r.Context(), tx, eventID)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		if middleware.WantsJSON(r) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Event not found.")
			return
		}
		redirectWithFlash(w, r, h.cfg, models.FlashDanger, "Event not found.", "/")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to query event", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.EventDetail, event.Title, event)
}

// EventQRCode handles GET /event/{id}/qr.png
// Returns a PNG QR code pointing at the event's registration page
func (h *EventHandler) EventQRCode(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		_, err := getEvent(r.Context(), tx, eventID)
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		middleware.Fail(w, r, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to query event", err)
		return
	}

	target := RegistrationURL(h.cfg.BaseURL, eventID)
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		slog.Error("failed to encode QR code", "error", err, "url", target)
		middleware.Fail(w, r, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// RegistrationURL is the absolute URL of an event's registration form
func RegistrationURL(baseURL string, eventID int64) string {
	return strings.TrimRight(baseURL, "/") + "/register/" + strconv.FormatInt(eventID, 10)
}
