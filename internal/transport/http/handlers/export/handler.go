package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"liquidador/internal/domain/access"
	"liquidador/internal/domain/holiday"
	"liquidador/internal/domain/salary"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	"liquidador/internal/transport/http/middleware"
)

type Handler struct {
	Grades   *salary.Store
	Holidays *holiday.Store
	Accesses *access.Service
}

func NewHandler(grades *salary.Store, holidays *holiday.Store, accesses *access.Service) *Handler {
	return &Handler{Grades: grades, Holidays: holidays, Accesses: accesses}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAdmin).Get("/export/db", h.handleDatabase)
}

type databaseDump struct {
	ExportedAt string            `json:"exportedAt"`
	Grades     []salary.Grade    `json:"grades"`
	Holidays   []holiday.Holiday `json:"holidays"`
	Accesses   []access.Entry    `json:"accesses"`
}

// handleDatabase returns the full administrative dataset as one JSON
// document, used as a manual backup before maintenance.
func (h *Handler) handleDatabase(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	grades, err := h.Grades.List(r.Context())
	if err != nil {
		slog.Error("export grades failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not export grades", reqID)
		return
	}
	holidays, err := h.Holidays.List(r.Context())
	if err != nil {
		slog.Error("export holidays failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not export holidays", reqID)
		return
	}
	accesses, err := h.Accesses.List(r.Context())
	if err != nil {
		slog.Error("export accesses failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not export access log", reqID)
		return
	}

	dump := databaseDump{
		ExportedAt: time.Now().Format(time.RFC3339),
		Grades:     grades,
		Holidays:   holidays,
		Accesses:   accesses,
	}
	if dump.Grades == nil {
		dump.Grades = []salary.Grade{}
	}
	if dump.Holidays == nil {
		dump.Holidays = []holiday.Holiday{}
	}
	if dump.Accesses == nil {
		dump.Accesses = []access.Entry{}
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q",
		fmt.Sprintf("liquidador-backup-%s.json", time.Now().Format("2006-01-02"))))
	api.Success(w, dump, reqID)
}
