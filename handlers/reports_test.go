// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tasmia-create/campus-event-prototype/models"
	"github.com/Tasmia-create/campus-event-prototype/testutil"
)

func getReport(t *testing.T, fn http.HandlerFunc, path string, v interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	fn(w, testutil.MakeJSONRequest(path))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, v)
}

func TestViewAttendance(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	asha := testutil.RegisterTestStudent(t, store, "Asha", 1)
	ravi := testutil.RegisterTestStudent(t, store, "Ravi", 1)
	testutil.AddTestAttendance(t, store, asha, 1, models.StatusPresent)
	testutil.AddTestAttendance(t, store, ravi, 1, models.StatusAbsent)

	req := testutil.MakeJSONRequest("/view_attendance/1")
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.ViewAttendance(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var rows []models.AttendanceRow
	testutil.AssertJSON(t, w, &rows)

	expected := []models.AttendanceRow{{Name: "Asha", Status: "Present"}, {Name: "Ravi", Status: "Absent"}}
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(rows))
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("Row %d: expected %+v, got %+v", i, expected[i], rows[i])
		}
	}

	// Event without attendance renders an empty page
	req = httptest.NewRequest("GET", "/view_attendance/2", nil)
	req.SetPathValue("id", "2")
	w = httptest.NewRecorder()
	handler.ViewAttendance(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestViewFeedback(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	asha := testutil.RegisterTestStudent(t, store, "Asha", 1)
	testutil.AddTestFeedback(t, store, asha, 1, 5)
	testutil.AddTestFeedback(t, store, asha, 2, 2)

	req := testutil.MakeJSONRequest("/view_feedback/1")
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	handler.ViewFeedback(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var rows []models.FeedbackRow
	testutil.AssertJSON(t, w, &rows)
	if len(rows) != 1 || rows[0].Name != "Asha" || rows[0].Rating != 5 {
		t.Errorf("Unexpected feedback rows: %+v", rows)
	}
}

func TestRegistrationsReport(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	testutil.RegisterTestStudent(t, store, "Asha", 1)
	testutil.RegisterTestStudent(t, store, "Ravi", 1)

	var rows []models.RegistrationCount
	getReport(t, handler.Registrations, "/reports/registrations", &rows)

	if len(rows) != 2 {
		t.Fatalf("Expected a row per event, got %d", len(rows))
	}
	if rows[0].Title != "Tech Fest" || rows[0].Count != 2 {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
	if rows[1].Title != "Cultural Night" || rows[1].Count != 0 {
		t.Errorf("Events without registrations must report 0, got %+v", rows[1])
	}
}

func TestAttendanceReport(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	asha := testutil.RegisterTestStudent(t, store, "Asha", 1)
	ravi := testutil.RegisterTestStudent(t, store, "Ravi", 1)
	testutil.AddTestAttendance(t, store, asha, 1, models.StatusPresent)
	testutil.AddTestAttendance(t, store, ravi, 1, models.StatusAbsent)

	var rows []models.AttendanceRate
	getReport(t, handler.Attendance, "/reports/attendance", &rows)

	if len(rows) != 2 {
		t.Fatalf("Expected a row per event, got %d", len(rows))
	}
	if rows[0].Percentage != 50.0 {
		t.Errorf("Expected 50.0%% for Tech Fest, got %v", rows[0].Percentage)
	}
	if rows[1].Percentage != 0 {
		t.Errorf("Expected 0%% for event without registrations, got %v", rows[1].Percentage)
	}
}

func TestAttendanceReport_UnmarkedCountsAsAbsent(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	asha := testutil.RegisterTestStudent(t, store, "Asha", 1)
	testutil.RegisterTestStudent(t, store, "Ravi", 1)
	testutil.RegisterTestStudent(t, store, "Meera", 1)
	testutil.RegisterTestStudent(t, store, "Kiran", 1)
	testutil.AddTestAttendance(t, store, asha, 1, models.StatusPresent)

	var rows []models.AttendanceRate
	getReport(t, handler.Attendance, "/reports/attendance", &rows)

	if rows[0].Percentage != 25.0 {
		t.Errorf("Expected 25.0%%, got %v", rows[0].Percentage)
	}
}

func TestFeedbackReport(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	asha := testutil.RegisterTestStudent(t, store, "Asha", 1)
	ravi := testutil.RegisterTestStudent(t, store, "Ravi", 1)
	testutil.AddTestFeedback(t, store, asha, 1, 5)
	testutil.AddTestFeedback(t, store, ravi, 1, 3)

	var rows []models.FeedbackAverage
	getReport(t, handler.Feedback, "/reports/feedback", &rows)

	if len(rows) != 2 {
		t.Fatalf("Expected a row per event, got %d", len(rows))
	}
	if rows[0].Average != 4.0 {
		t.Errorf("Expected average 4.0, got %v", rows[0].Average)
	}
	if rows[1].Average != 0 {
		t.Errorf("Expected 0 for event without feedback, got %v", rows[1].Average)
	}
}

func TestTopStudentsReport(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	third := testutil.CreateTestEvent(t, store, "Hack Day", "Workshop", "2025-10-01")

	asha := testutil.RegisterTestStudent(t, store, "Asha", 1)
	ravi := testutil.RegisterTestStudent(t, store, "Ravi", 1)
	meera := testutil.RegisterTestStudent(t, store, "Meera", 1)
	kiran := testutil.RegisterTestStudent(t, store, "Kiran", 1)

	// Asha 3, Ravi 2 (absent still counts), Meera 1, Kiran 1
	testutil.AddTestAttendance(t, store, asha, 1, models.StatusPresent)
	testutil.AddTestAttendance(t, store, asha, 2, models.StatusPresent)
	testutil.AddTestAttendance(t, store, asha, third, models.StatusAbsent)
	testutil.AddTestAttendance(t, store, ravi, 1, models.StatusAbsent)
	testutil.AddTestAttendance(t, store, ravi, 2, models.StatusAbsent)
	testutil.AddTestAttendance(t, store, meera, 1, models.StatusPresent)
	testutil.AddTestAttendance(t, store, kiran, 1, models.StatusPresent)

	var rows []models.TopStudent
	getReport(t, handler.TopStudents, "/reports/top_students", &rows)

	expected := []models.TopStudent{
		{StudentID: asha, Name: "Asha", TotalAttendance: 3},
		{StudentID: ravi, Name: "Ravi", TotalAttendance: 2},
		{StudentID: meera, Name: "Meera", TotalAttendance: 1},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(expected), len(rows), rows)
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("Rank %d: expected %+v, got %+v", i+1, expected[i], rows[i])
		}
	}
}

func TestReports_EmptyDatabase(t *testing.T) {
	store, cfg := testutil.SetupTestDB(t)
	handler := NewReportHandler(store, cfg)

	var rows []models.TopStudent
	getReport(t, handler.TopStudents, "/reports/top_students", &rows)
	if len(rows) != 0 {
		t.Errorf("Expected no top students, got %+v", rows)
	}

	// HTML rendering of every report
	for path, fn := range map[string]http.HandlerFunc{
		"/reports/registrations": handler.Registrations,
		"/reports/attendance":    handler.Attendance,
		"/reports/feedback":      handler.Feedback,
		"/reports/top_students":  handler.TopStudents,
	} {
		w := httptest.NewRecorder()
		fn(w, httptest.NewRequest("GET", path, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
			t.Errorf("%s: expected HTML response", path)
		}
	}
}
