// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
)

// Tables in creation order. Reset drops them in reverse.
var tables = []string{"Colleges", "Students", "Events", "Registrations", "Attendance", "Feedback"}

// SeedEvent is a demonstration event inserted into an empty Events table.
type SeedEvent struct {
	Title string
	Type  string
	Date  string
}

var seedEvents = []SeedEvent{
	{Title: "Tech Fest", Type: "Workshop", Date: "2025-09-15"},
	{Title: "Cultural Night", Type: "Cultural", Date: "2025-09-20"},
}

// SeedEvents returns a copy of the demonstration events.
func SeedEvents() []SeedEvent {
	return append([]SeedEvent(nil), seedEvents...)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, tx *sql.Tx, dbType string) error {
	for _, stmt := range schemaStatements(dbType) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// SeedIfEmpty inserts the demonstration events only when Events has no rows.
// It reports whether anything was inserted.
func SeedIfEmpty(ctx context.Context, tx *sql.Tx) (bool, error) {
	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM Events").Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count events: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for _, e := range seedEvents {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO Events (title, type, date) VALUES ($1, $2, $3)
		`, e.Title, e.Type, e.Date)
		if err != nil {
			return false, fmt.Errorf("failed to seed event %q: %w", e.Title, err)
		}
	}

	return true, nil
}

func schemaStatements(dbType string) []string {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if dbType == cliparse.DatabasePostgres {
		id = "SERIAL PRIMARY KEY"
	}

	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Colleges (
			college_id %s,
			name TEXT NOT NULL
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Students (
			student_id %s,
			name TEXT NOT NULL,
			college_id INTEGER REFERENCES Colleges(college_id)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Events (
			event_id %s,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			date TEXT NOT NULL,
			college_id INTEGER REFERENCES Colleges(college_id)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Registrations (
			registration_id %s,
			student_id INTEGER REFERENCES Students(student_id),
			event_id INTEGER REFERENCES Events(event_id)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Attendance (
			attendance_id %s,
			student_id INTEGER REFERENCES Students(student_id),
			event_id INTEGER REFERENCES Events(event_id),
			status TEXT CHECK (status IN ('Present', 'Absent')),
			UNIQUE (student_id, event_id)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS Feedback (
			feedback_id %s,
			student_id INTEGER REFERENCES Students(student_id),
			event_id INTEGER REFERENCES Events(event_id),
			rating INTEGER CHECK (rating BETWEEN 1 AND 5)
		)`, id),
		`CREATE INDEX IF NOT EXISTS idx_registrations_event_id ON Registrations(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_event_id ON Feedback(event_id)`,
	}
}
