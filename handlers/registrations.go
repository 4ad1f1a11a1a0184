// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/models"
	"github.com/danielhkuo/member-registry/recordstore"
)

// timestampLayout matches the format used by existing data files.
const timestampLayout = "2006-01-02 15:04:05"

type RegistrationHandler struct {
	records *recordstore.Store
}

func NewRegistrationHandler(records *recordstore.Store) *RegistrationHandler {
	return &RegistrationHandler{records: records}
}

// Submit handles POST /registrations
// Requires a session (enforced by the router). Validation happens
// entirely before the store is touched; a rejected submission writes
// nothing.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var rec models.Registration
	if err := middleware.ParseJSONBody(r, &rec); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if missing := rec.Validate(); len(missing) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Please fill in the following required fields: "+strings.Join(missing, ", "))
		return
	}

	// Server-set fields win over anything the client sent
	s, _ := middleware.SessionFromContext(r.Context())
	rec.Timestamp = time.Now().Format(timestampLayout)
	rec.SubmittedBy = s.Username

	if err := h.records.Append(rec); err != nil {
		slog.Error("failed to append record", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save registration")
		return
	}

	slog.Info("registration submitted", "official_name", rec.OfficialName, "submitted_by", rec.SubmittedBy)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRegistrationResponse{
		Message: "Information submitted successfully",
	})
}

// List handles GET /registrations
// Requires a session (enforced by the router).
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.LoadAll()
	if err != nil {
		slog.Error("failed to load records", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load records")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListRegistrationsResponse{
		Records: records,
		Count:   len(records),
	})
}

// Export handles GET /registrations/export
// Requires a session (enforced by the router). Streams the full record
// table as a CSV download.
func (h *RegistrationHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.LoadAll()
	if err != nil {
		slog.Error("failed to load records for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load records")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="yoka_knust_data.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write(models.RegistrationColumns); err != nil {
		slog.Error("failed to write export header", "error", err)
		return
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			slog.Error("failed to write export row", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to flush export", "error", err)
	}

	s, _ := middleware.SessionFromContext(r.Context())
	slog.Info("records exported", "count", len(records), "by", s.Username)
}
