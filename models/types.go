package models

// Attendance status constants
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Flash categories
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

// Form types

type AddEventForm struct {
	Title string `json:"title" validate:"required"`
	Type  string `json:"type" validate:"required"`
	Date  string `json:"date" validate:"required"`
}

type RegisterForm struct {
	Name    string `json:"name" validate:"required"`
	EventID int64  `json:"event_id" validate:"required,gt=0"`
}

// AttendanceMark is one attendance_<student_id> field of a submission.
type AttendanceMark struct {
	StudentID int64  `json:"student_id" validate:"gt=0"`
	Status    string `json:"status" validate:"oneof=Present Absent"`
}

type FeedbackForm struct {
	StudentID int64 `json:"student_id" validate:"required,gt=0"`
	Rating    int   `json:"rating" validate:"required,min=1,max=5"`
}

// Domain types

type Student struct {
	ID        int64  `json:"student_id"`
	Name      string `json:"name"`
	CollegeID *int64 `json:"college_id,omitempty"`
}

type Event struct {
	ID        int64  `json:"event_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	CollegeID *int64 `json:"college_id,omitempty"`
}

// View types

type RegisterPage struct {
	Events          []Event `json:"events"`
	SelectedEventID int64   `json:"selected_event_id"`
}

type RosterPage struct {
	EventID  int64     `json:"event_id"`
	Students []Student `json:"students"`
}

type AttendanceRow struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type FeedbackRow struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// Report types

type RegistrationCount struct {
	EventID int64  `json:"event_id"`
	Title   string `json:"title"`
	Count   int    `json:"count"`
}

type AttendanceRate struct {
	EventID    int64   `json:"event_id"`
	Title      string  `json:"title"`
	Percentage float64 `json:"attendance_percentage"`
}

type FeedbackAverage struct {
	EventID int64   `json:"event_id"`
	Title   string  `json:"title"`
	Average float64 `json:"average_rating"`
}

type TopStudent struct {
	StudentID       int64  `json:"student_id"`
	Name            string `json:"name"`
	TotalAttendance int    `json:"total_attendance"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
