// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"

	"github.com/Tasmia-create/campus-event-prototype/models"
)

// listEvents returns every event in row order
func listEvents(ctx context.Context, tx *sql.Tx) ([]models.Event, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT event_id, title, type, date, college_id
		FROM Events
		ORDER BY event_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Type, &e.Date, &e.CollegeID); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// getEvent returns sql.ErrNoRows when the event does not exist
func getEvent(ctx context.Context, tx *sql.Tx, id int64) (models.Event, error) {
	var e models.Event
	err := tx.QueryRowContext(ctx, `
		SELECT event_id, title, type, date, college_id
		FROM Events
		WHERE event_id = $1
	`, id).Scan(&e.ID, &e.Title, &e.Type, &e.Date, &e.CollegeID)
	return e, err
}

// registeredStudents returns the students registered for an event
func registeredStudents(ctx context.Context, tx *sql.Tx, eventID int64) ([]models.Student, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT s.student_id, s.name, s.college_id
		FROM Students s
		JOIN Registrations r ON s.student_id = r.student_id
		WHERE r.event_id = $1
		ORDER BY r.registration_id
	`, eventID)
	if err != nil {
		return nil, err
	}
	return scanStudents(rows)
}

// allStudents returns every student regardless of registration
func allStudents(ctx context.Context, tx *sql.Tx) ([]models.Student, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT student_id, name, college_id
		FROM Students
		ORDER BY student_id
	`)
	if err != nil {
		return nil, err
	}
	return scanStudents(rows)
}

func scanStudents(rows *sql.Rows) ([]models.Student, error) {
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.CollegeID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
