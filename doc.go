// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the campus event manager.

The server records colleges, students, events, registrations, attendance and
feedback, and renders simple aggregate reports as HTML pages.

# Starting the Server

	SESSION_SECRET=dev go run .

Or with flags:

	go run . -p 5000 -d campus.db -session-secret dev

A .env file in the working directory is read if present.

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): Secret for signing flash cookies

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite file or PostgreSQL URL (default: database.db)
  - BASE_URL (--base-url): Public URL used in registration QR codes

# Architecture

  - handlers: HTTP request handlers (events, registration, attendance, feedback, reports, reset)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, metrics, JSON and validation helpers
  - views: Embedded HTML templates
  - flash: Signed one-shot notices
  - models: Form, domain and report types
  - db: Schema creation, seeding, reset and scoped store access
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
