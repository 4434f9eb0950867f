// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the campus event portal.

	mux := router.NewRouter(store, cfg)

# Endpoints

Operational:

	GET /health
	GET /metrics

Events:

	GET  /                  - List events
	GET  /add_event         - Event form
	POST /add_event         - Create event
	GET  /event/{id}        - Event detail
	GET  /event/{id}/qr.png - Registration QR code

Participation:

	GET|POST /register/{id}
	GET|POST /attendance/{id}
	GET|POST /feedback/{id}

Reports (read-only):

	GET /view_attendance/{id}
	GET /view_feedback/{id}
	GET /reports/registrations
	GET /reports/attendance
	GET /reports/feedback
	GET /reports/top_students

Administration:

	GET /reset_db - Wipe all data and reseed
*/
package router
