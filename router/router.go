// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
	"github.com/Tasmia-create/campus-event-prototype/handlers"
	"github.com/Tasmia-create/campus-event-prototype/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(store, cfg)
	registrationHandler := handlers.NewRegistrationHandler(store, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(store, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(store, cfg)
	reportHandler := handlers.NewReportHandler(store, cfg)
	adminHandler := handlers.NewAdminHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Events
	mux.HandleFunc("GET /{$}", middleware.WithLogging(eventHandler.ListEvents))
	mux.HandleFunc("GET /add_event", middleware.WithLogging(eventHandler.AddEventForm))
	mux.HandleFunc("POST /add_event", middleware.WithLogging(eventHandler.AddEvent))
	mux.HandleFunc("GET /event/{id}", middleware.WithLogging(eventHandler.EventDetail))
	mux.HandleFunc("GET /event/{id}/qr.png", middleware.WithLogging(eventHandler.EventQRCode))

	// Registration
	mux.HandleFunc("GET /register/{id}", middleware.WithLogging(registrationHandler.RegisterForm))
	mux.HandleFunc("POST /register/{id}", middleware.WithLogging(registrationHandler.Register))

	// Attendance
	mux.HandleFunc("GET /attendance/{id}", middleware.WithLogging(attendanceHandler.AttendanceForm))
	mux.HandleFunc("POST /attendance/{id}", middleware.WithLogging(attendanceHandler.MarkAttendance))

	// Feedback
	mux.HandleFunc("GET /feedback/{id}", middleware.WithLogging(feedbackHandler.FeedbackForm))
	mux.HandleFunc("POST /feedback/{id}", middleware.WithLogging(feedbackHandler.SubmitFeedback))

	// Per-event listings and reports (read-only)
	mux.HandleFunc("GET /view_attendance/{id}", middleware.WithLogging(reportHandler.ViewAttendance))
	mux.HandleFunc("GET /view_feedback/{id}", middleware.WithLogging(reportHandler.ViewFeedback))
	mux.HandleFunc("GET /reports/registrations", middleware.WithLogging(reportHandler.Registrations))
	mux.HandleFunc("GET /reports/attendance", middleware.WithLogging(reportHandler.Attendance))
	mux.HandleFunc("GET /reports/feedback", middleware.WithLogging(reportHandler.Feedback))
	mux.HandleFunc("GET /reports/top_students", middleware.WithLogging(reportHandler.TopStudents))

	// Destructive: wipes and reseeds the store
	mux.HandleFunc("GET /reset_db", middleware.WithLogging(adminHandler.ResetDB))

	return mux
}
