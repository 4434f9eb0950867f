// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines form, domain, view and report types.

# Form Types

Submitted form fields, validated with go-playground/validator tags:

  - AddEventForm: title, type, date
  - RegisterForm: name, event_id
  - AttendanceMark: one attendance_<student_id> field
  - FeedbackForm: student_id, rating (1-5)

# Domain Types

Student and Event, as listed on the pages. Registrations, attendance and
feedback are only read back through the view and report types.

# View and Report Types

  - RegisterPage, RosterPage: form pages
  - AttendanceRow, FeedbackRow: per-event listings
  - RegistrationCount, AttendanceRate, FeedbackAverage, TopStudent: reports
  - ErrorResponse: JSON error body

# Constants

Attendance status:

	StatusPresent = "Present"
	StatusAbsent  = "Absent"

Flash categories:

	FlashSuccess = "success"
	FlashDanger  = "danger"
*/
package models
