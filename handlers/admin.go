// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Tasmia-create/campus-event-prototype/cliparse"
	"github.com/Tasmia-create/campus-event-prototype/db"
	"github.com/Tasmia-create/campus-event-prototype/models"
)

type AdminHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAdminHandler(store *db.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg}
}

// ResetDB handles GET /reset_db
// Irreversibly wipes all data and restores the seeded demo events.
func (h *AdminHandler) ResetDB(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reset(r.Context()); err != nil {
		databaseError(w, r, "failed to reset database", err)
		return
	}

	slog.Warn("database reset via HTTP", "remote", r.RemoteAddr)

	redirectWithFlash(w, r, h.cfg, models.FlashSuccess, "Database has been reset!", "/")
}
