// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /reports/feedback", middleware.WithLogging(handler))

Each request gets an X-Request-ID (an incoming one is kept). Start and
completion are logged with slog, and request count and latency are
recorded in Prometheus, labelled by route pattern.

Build the process logger with NewLogger; it writes text to a terminal
and JSON otherwise.

# Responses

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Fail picks JSON or plain text depending on the request's Accept header.

# Input

	id, ok := middleware.PathID(r, "id")
	err := middleware.Validate(form)

Validate applies the struct's validate tags.

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
