// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/flash"
	"github.com/Tasmia-create/campus-event-prototype/middleware"
	"github.com/Tasmia-create/campus-event-prototype/views"
)

var errInvalidForm = errors.New("invalid form")

// render writes data as JSON for API clients, otherwise as the named page
func render(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, status int, page, title string, data interface{}) {
	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, status, data)
		return
	}

	p := views.Page{
		Title: title,
		Flash: flash.Pop(w, r, cfg.SessionSecret),
		Data:  data,
	}
	if err := views.Render(w, status, page, p); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// redirectWithFlash stores a notice for the next page and redirects to target
func redirectWithFlash(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, category, text, target string) {
	if err := flash.Set(w, cfg.SessionSecret, category, text); err != nil {
		slog.Warn("failed to set flash", "error", err)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// databaseError logs err and answers with a generic 500
func databaseError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path)
	middleware.Fail(w, r, http.StatusInternalServerError, "Database error")
}

// eventIDFromPath reads {id}; a non-numeric id is treated as an unknown route
func eventIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.PathID(r, "id")
	if !ok {
		middleware.Fail(w, r, http.StatusNotFound, "event id must be a positive integer")
		return 0, false
	}
	return id, true
}
