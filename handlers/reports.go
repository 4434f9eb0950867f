// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
	"github.com/Tasmia-create/campus-event-prototype/models"
	"github.com/Tasmia-create/campus-event-prototype/views"
)

// ReportHandler serves the read-only per-event listings and aggregate reports
type ReportHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewReportHandler(store *db.Store, cfg cliparse.Config) *ReportHandler {
	return &ReportHandler{store: store, cfg: cfg}
}

// ViewAttendance handles GET /view_attendance/{id}
func (h *ReportHandler) ViewAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	rows := []models.AttendanceRow{}
	err := h.query(r.Context(), `
		SELECT s.name, a.status
		FROM Attendance a
		JOIN Students s ON a.student_id = s.student_id
		WHERE a.event_id = $1
		ORDER BY a.attendance_id
	`, []interface{}{eventID}, func(sc scanner) error {
		var row models.AttendanceRow
		if err := sc.Scan(&row.Name, &row.Status); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		databaseError(w, r, "failed to query attendance", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.ViewAttendance, "Attendance", rows)
}

// ViewFeedback handles GET /view_feedback/{id}
func (h *ReportHandler) ViewFeedback(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}

	rows := []models.FeedbackRow{}
	err := h.query(r.Context(), `
		SELECT s.name, f.rating
		FROM Feedback f
		JOIN Students s ON f.student_id = s.student_id
		WHERE f.event_id = $1
		ORDER BY f.feedback_id
	`, []interface{}{eventID}, func(sc scanner) error {
		var row models.FeedbackRow
		if err := sc.Scan(&row.Name, &row.Rating); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		databaseError(w, r, "failed to query feedback", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.ViewFeedback, "Feedback", rows)
}

// Registrations handles GET /reports/registrations
// Events without registrations are reported with a count of 0.
func (h *ReportHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	rows := []models.RegistrationCount{}
	err := h.query(r.Context(), `
		SELECT e.event_id, e.title, COUNT(r.registration_id)
		FROM Events e
		LEFT JOIN Registrations r ON e.event_id = r.event_id
		GROUP BY e.event_id, e.title
		ORDER BY e.event_id
	`, nil, func(sc scanner) error {
		var row models.RegistrationCount
		if err := sc.Scan(&row.EventID, &row.Title, &row.Count); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		databaseError(w, r, "failed to build registrations report", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.ReportRegistration, "Registrations per Event", rows)
}

// Attendance handles GET /reports/attendance
// Percentage is present records * 100 / registrations, 0 without registrations.
func (h *ReportHandler) Attendance(w http.ResponseWriter, r *http.Request) {
	rows := []models.AttendanceRate{}
	err := h.query(r.Context(), `
		SELECT e.event_id, e.title,
		       CAST(CASE
		           WHEN COUNT(r.registration_id) = 0 THEN 0
		           ELSE SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END) * 100.0 / COUNT(r.registration_id)
		       END AS DOUBLE PRECISION) AS attendance_percentage
		FROM Events e
		LEFT JOIN Registrations r ON e.event_id = r.event_id
		LEFT JOIN Attendance a ON r.student_id = a.student_id AND r.event_id = a.event_id
		GROUP BY e.event_id, e.title
		ORDER BY e.event_id
	`, nil, func(sc scanner) error {
		var row models.AttendanceRate
		if err := sc.Scan(&row.EventID, &row.Title, &row.Percentage); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		databaseError(w, r, "failed to build attendance report", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.ReportAttendance, "Attendance per Event", rows)
}

// Feedback handles GET /reports/feedback
func (h *ReportHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	rows := []models.FeedbackAverage{}
	err := h.query(r.Context(), `
		SELECT e.event_id, e.title, CAST(COALESCE(AVG(f.rating), 0) AS DOUBLE PRECISION)
		FROM Events e
		LEFT JOIN Feedback f ON e.event_id = f.event_id
		GROUP BY e.event_id, e.title
		ORDER BY e.event_id
	`, nil, func(sc scanner) error {
		var row models.FeedbackAverage
		if err := sc.Scan(&row.EventID, &row.Title, &row.Average); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		databaseError(w, r, "failed to build feedback report", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.ReportFeedback, "Average Feedback per Event", rows)
}

// TopStudents handles GET /reports/top_students
// Ranks by number of attendance records (any status); ties go to the older student.
func (h *ReportHandler) TopStudents(w http.ResponseWriter, r *http.Request) {
	rows := []models.TopStudent{}
	err := h.query(r.Context(), `
		SELECT s.student_id, s.name, COUNT(a.attendance_id) AS total_attendance
		FROM Students s
		JOIN Attendance a ON s.student_id = a.student_id
		GROUP BY s.student_id, s.name
		ORDER BY total_attendance DESC, s.student_id
		LIMIT 3
	`, nil, func(sc scanner) error {
		var row models.TopStudent
		if err := sc.Scan(&row.StudentID, &row.Name, &row.TotalAttendance); err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		databaseError(w, r, "failed to build top students report", err)
		return
	}

	render(w, r, h.cfg, http.StatusOK, views.ReportTopStudents, "Top Students", rows)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// query runs a read-only statement and hands each row to fn
func (h *ReportHandler) query(ctx context.Context, q string, args []interface{}, fn func(scanner) error) error {
	return h.store.WithTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			if err := fn(rows); err != nil {
				return err
			}
		}
		return rows.Err()
	})
}
