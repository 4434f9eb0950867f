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

type FeedbackHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewFeedbackHandler(store *db.Store, cfg cliparse.Config) *FeedbackHandler {
	return &FeedbackHandler{store: store, cfg: cfg}
}

// FeedbackForm handles GET /feedback/{id}
// Lists every student, not only those registered for the event.
func (h *FeedbackHandler) FeedbackForm(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	page := models.RosterPage{EventID: eventID}
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		var err error
		page.Students, err = allStudents(r.Context(), tx)
		return err
	})
	if err != nil {
		databaseError(w, r, "failed to list students", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.Feedback, "Feedback", page)
}

// SubmitFeedback handles POST /feedback/{id}
// Repeated feedback for the same student and event is kept.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	studentID, err := strconv.ParseInt(r.PostFormValue("student_id"), 10, 64)
	if err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "student_id must be an integer")
		return
	}
	rating, err := strconv.Atoi(r.PostFormValue("rating"))
	if err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "rating must be an integer")
		return
	}

	form := models.FeedbackForm{StudentID: studentID, Rating: rating}
	if err := middleware.Validate(form); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	err = h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		_, err := tx.ExecContext(r.Context(), `
			INSERT INTO Feedback (student_id, event_id, rating)
			VALUES ($1, $2, $3)
		`, form.StudentID, eventID, form.Rating)
		return err
	})
	if err != nil {
		databaseError(w, r, "failed to insert feedback", err)
		return
	}

	slog.Info("feedback submitted", "event_id", eventID, "student_id", form.StudentID, "rating", form.Rating)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess, "Feedback submitted!", "/")
}
