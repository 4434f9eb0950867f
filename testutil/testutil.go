// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
)

// SetupTestDB creates a fresh SQLite file with the full schema and seed events
func SetupTestDB(t *testing.T) (*db.Store, cliparse.Config) {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "campus_test.db")

	store, err := db.NewStore(cfg)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store, cfg
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  cliparse.DatabaseSQLite,
		DatabaseURL:   "campus_test.db",
		SessionSecret: "test-session-secret",
		BaseURL:       "http://campus.test",
	}
}

// Exec runs a statement in its own transaction
func Exec(t *testing.T, store *db.Store, query string, args ...interface{}) {
	t.Helper()

	err := store.WithTx(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.Exec(query, args...)
		return err
	})
	if err != nil {
		t.Fatalf("Exec %q failed: %v", query, err)
	}
}

// QueryInt runs a single-value integer query such as SELECT COUNT(*)
func QueryInt(t *testing.T, store *db.Store, query string, args ...interface{}) int {
	t.Helper()

	var n int
	err := store.WithTx(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(query, args...).Scan(&n)
	})
	if err != nil {
		t.Fatalf("Query %q failed: %v", query, err)
	}
	return n
}

// CreateTestEvent inserts an event and returns its id
func CreateTestEvent(t *testing.T, store *db.Store, title, eventType, date string) int64 {
	t.Helper()

	var id int64
	err := store.WithTx(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRow(`
			INSERT INTO Events (title, type, date) VALUES ($1, $2, $3) RETURNING event_id
		`, title, eventType, date).Scan(&id)
	})
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return id
}

// RegisterTestStudent creates a student registered for eventID and returns the student id
func RegisterTestStudent(t *testing.T, store *db.Store, name string, eventID int64) int64 {
	t.Helper()

	var id int64
	err := store.WithTx(context.Background(), func(tx *sql.Tx) error {
		if err := tx.QueryRow(`
			INSERT INTO Students (name) VALUES ($1) RETURNING student_id
		`, name).Scan(&id); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT INTO Registrations (student_id, event_id) VALUES ($1, $2)
		`, id, eventID)
		return err
	})
	if err != nil {
		t.Fatalf("Failed to register test student: %v", err)
	}
	return id
}

// AddTestAttendance records a status for a student at an event
func AddTestAttendance(t *testing.T, store *db.Store, studentID, eventID int64, status string) {
	t.Helper()
	Exec(t, store, `
		INSERT INTO Attendance (student_id, event_id, status) VALUES ($1, $2, $3)
	`, studentID, eventID, status)
}

// AddTestFeedback records a rating for a student at an event
func AddTestFeedback(t *testing.T, store *db.Store, studentID, eventID int64, rating int) {
	t.Helper()
	Exec(t, store, `
		INSERT INTO Feedback (student_id, event_id, rating) VALUES ($1, $2, $3)
	`, studentID, eventID, rating)
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeJSONRequest creates a GET request asking for a JSON response
func MakeJSONRequest(path string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("Accept", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
