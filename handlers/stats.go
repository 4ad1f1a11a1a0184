// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/member-registry/credstore"
	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/models"
	"github.com/danielhkuo/member-registry/recordstore"
	"github.com/danielhkuo/member-registry/session"
)

type StatsHandler struct {
	creds    *credstore.Store
	records  *recordstore.Store
	sessions *session.Manager
}

func NewStatsHandler(creds *credstore.Store, records *recordstore.Store, sessions *session.Manager) *StatsHandler {
	return &StatsHandler{creds: creds, records: records, sessions: sessions}
}

// Get handles GET /stats (admin only, enforced by the router)
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	users, err := h.creds.ListUsers()
	if err != nil {
		slog.Error("failed to load users for stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	records, err := h.records.LoadAll()
	if err != nil {
		slog.Error("failed to load records for stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	storeSize := "0 B"
	if info, err := os.Stat(h.records.Path()); err == nil {
		storeSize = humanize.Bytes(uint64(info.Size()))
	}

	lastSubmission := "never"
	if len(records) > 0 {
		if ts, err := time.ParseInLocation(timestampLayout, records[len(records)-1].Timestamp, time.Local); err == nil {
			lastSubmission = humanize.Time(ts)
		} else {
			lastSubmission = records[len(records)-1].Timestamp
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		UserCount:      len(users),
		RecordCount:    len(records),
		StoreSize:      storeSize,
		LastSubmission: lastSubmission,
		ActiveSessions: h.sessions.Count(),
	})
}
