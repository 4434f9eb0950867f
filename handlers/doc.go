// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the campus event portal.

# Handler Types

Each handler is a struct holding the store and config:

  - EventHandler: event listing, creation, detail and registration QR code
  - RegistrationHandler: student registration
  - AttendanceHandler: attendance roster and marking
  - FeedbackHandler: feedback form and submission
  - ReportHandler: per-event listings and aggregate reports
  - AdminHandler: database reset

Handlers are created via constructor functions that accept *db.Store and Config:

	eventHandler := handlers.NewEventHandler(store, cfg)

Every request runs its statements inside one store.WithTx call, so the
database handle never outlives the request.

# Responses

Pages are rendered from the views package. Clients sending
Accept: application/json receive the same data as JSON instead.

Form submissions answer with 302 redirects carrying a one-shot flash
notice. Malformed forms are rejected with 400 before touching the store.

# Attendance

Attendance is stored with an upsert on (student_id, event_id), so
resubmitting the form overwrites the previous status:

	attendance_<student_id>=Present|Absent
*/
package handlers
