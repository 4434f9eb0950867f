// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
	"github.com/Tasmia-create/campus-event-prototype/middleware"
	"github.com/Tasmia-create/campus-event-prototype/models"
	"github.com/Tasmia-create/campus-event-prototype/views"
)

const attendanceFieldPrefix = "attendance_"

type AttendanceHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAttendanceHandler(store *db.Store, cfg cliparse.Config) *AttendanceHandler {
	return &AttendanceHandler{store: store, cfg: cfg}
}

// AttendanceForm handles GET /attendance/{id}
func (h *AttendanceHandler) AttendanceForm(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	page := models.RosterPage{EventID: eventID}
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		var err error
		page.Students, err = registeredStudents(r.Context(), tx, eventID)
		return err
	})
	if err != nil {
		databaseError(w, r, "failed to query registered students", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.Attendance, "Mark Attendance", page)
}

// MarkAttendance handles POST /attendance/{id}
// Only the fields of registered students are read; a student without an
// attendance_<student_id> field is left untouched.
func (h *AttendanceHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		middleware.Fail(w, r, http.StatusBadRequest, "Invalid form")
		return
	}

	saved := 0
	err := h.store.WithTx(r.Context(), func(tx *sql.Tx) error {
		students, err := registeredStudents(r.Context(), tx, eventID)
		if err != nil {
			return err
		}

		for _, s := range students {
			mark, ok, err := attendanceMark(r.PostForm, s.ID)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			// Atomic upsert keyed by UNIQUE (student_id, event_id)
			_, err = tx.ExecContext(r.Context(), `
				INSERT INTO Attendance (student_id, event_id, status)
				VALUES ($1, $2, $3)
				ON CONFLICT (student_id, event_id) DO UPDATE SET status = excluded.status
			`, s.ID, eventID, mark.Status)
			if err != nil {
				return fmt.Errorf("failed to save attendance for student %d: %w", s.ID, err)
			}
			saved++
		}
		return nil
	})
	if errors.Is(err, errInvalidForm) {
		middleware.Fail(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		databaseError(w, r, "failed to save attendance", err)
		return
	}

	slog.Info("attendance saved", "event_id", eventID, "records", saved)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess, "Attendance saved!",
		"/view_attendance/"+strconv.FormatInt(eventID, 10))
}

// attendanceMark reads the attendance_<student_id> field of one student.
// An empty or missing field reports ok=false.
func attendanceMark(form url.Values, studentID int64) (models.AttendanceMark, bool, error) {
	key := attendanceFieldPrefix + strconv.FormatInt(studentID, 10)
	status := form.Get(key)
	if status == "" {
		return models.AttendanceMark{}, false, nil
	}

	mark := models.AttendanceMark{StudentID: studentID, Status: status}
	if err := middleware.Validate(mark); err != nil {
		return models.AttendanceMark{}, false, fmt.Errorf("%w: %s must be Present or Absent", errInvalidForm, key)
	}
	return mark, true, nil
}
