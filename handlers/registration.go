// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
	"github.com/Tasmia-create/campus-event-prototype/middleware"
	"github.com/Tasmia-create/campus-event-prototype/models"
	"github.com/Tasmia-create/campus-event-prototype/views"
)

type RegistrationHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewRegistrationHandler(store *db.Store, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{store: store, cfg: cfg}
}

// RegisterForm handles GET /register/{id}
func (h *RegistrationHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	page := models.RegisterPage{SelectedEventID: eventID}
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		var err error
		page.Events, err = listEvents(r.Context(), tx)
		return err
	})
	if err != nil {
		databaseError(w, r, "failed to list events", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.Register, "Register", page)
}

// Register handles POST /register/{id}
// A submitted event_id takes precedence over the one in the path.
// Every registration creates a new student row; names are not deduplicated.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	form := models.RegisterForm{
		Name:    r.PostFormValue("name"),
		EventID: eventID,
	}
	if v := r.PostFormValue("event_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			middleware.Fail(w, r, http.StatusBadRequest, "event_id must be an integer")
			return
		}
		form.EventID = id
	}
	if err := middleware.Validate(form); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "name and a valid event_id are required")
		return
	}

	var studentID int64
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		err := tx.QueryRowContext(r.Context(), `
			INSERT INTO Students (name)
			VALUES ($1)
			RETURNING student_id
		`, form.Name).Scan(&studentID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(r.Context(), `
			INSERT INTO Registrations (student_id, event_id)
			VALUES ($1, $2)
		`, studentID, form.EventID)
		return err
	})
	if err != nil {
		databaseError(w, r, "failed to register student", err)
		return
	}

	slog.Info("student registered", "student_id", studentID, "event_id", form.EventID)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess, "Registered successfully!", "/")
}
