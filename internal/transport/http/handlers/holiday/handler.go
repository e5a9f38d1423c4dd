package holiday

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"liquidador/internal/domain/holiday"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	"liquidador/internal/transport/http/middleware"
	"liquidador/internal/transport/http/shared"
)

type Handler struct {
	Store *holiday.Store

	// Year span used when a generate request does not name its own.
	DefaultFromYear int
	DefaultToYear   int
}

func NewHandler(store *holiday.Store, defaultFromYear, defaultToYear int) *Handler {
	return &Handler{Store: store, DefaultFromYear: defaultFromYear, DefaultToYear: defaultToYear}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/holidays", h.handleList)
	r.With(middleware.RequireAdmin).Post("/holidays", h.handleCreate)
	r.With(middleware.RequireAdmin).Delete("/holidays/{date}", h.handleDelete)
	r.With(middleware.RequireAdmin).Post("/holidays/generate", h.handleGenerate)
}

// handleList returns the stored calendar, optionally scoped to ?year=YYYY.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	var (
		holidays []holiday.Holiday
		err      error
	)
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		year, parseErr := strconv.Atoi(rawYear)
		if parseErr != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a number", reqID)
			return
		}
		holidays, err = h.Store.ListYear(r.Context(), year)
	} else {
		holidays, err = h.Store.List(r.Context())
	}
	if err != nil {
		slog.Error("list holidays failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not list holidays", reqID)
		return
	}
	if holidays == nil {
		holidays = []holiday.Holiday{}
	}
	api.Success(w, holidays, reqID)
}

type createRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// handleCreate adds or overwrites one manually managed holiday.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", reqID)
		return
	}
	if _, err := shared.ParseDate(req.Date); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", reqID)
		return
	}
	if req.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "name is required", reqID)
		return
	}

	entry := holiday.Holiday{Date: req.Date, Name: req.Name, Kind: holiday.KindFixed}
	if err := h.Store.Add(r.Context(), entry); err != nil {
		slog.Error("add holiday failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not save holiday", reqID)
		return
	}
	api.Created(w, entry, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	date := chi.URLParam(r, "date")
	if _, err := shared.ParseDate(date); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", reqID)
		return
	}

	if err := h.Store.Delete(r.Context(), date); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "holiday not found", reqID)
			return
		}
		slog.Error("delete holiday failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not delete holiday", reqID)
		return
	}
	api.Success(w, map[string]string{"deleted": date}, reqID)
}

type generateRequest struct {
	FromYear int `json:"fromYear"`
	ToYear   int `json:"toYear"`
}

// handleGenerate rebuilds the stored calendar from the Colombian holiday
// rules. Years default to the configured span; manual entries are
// replaced.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	req := generateRequest{FromYear: h.DefaultFromYear, ToYear: h.DefaultToYear}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", reqID)
			return
		}
		if req.FromYear == 0 {
			req.FromYear = h.DefaultFromYear
		}
		if req.ToYear == 0 {
			req.ToYear = h.DefaultToYear
		}
	}
	if req.FromYear < 1900 || req.ToYear > 2200 || req.FromYear > req.ToYear {
		api.Fail(w, http.StatusBadRequest, "invalid_range", "fromYear/toYear out of range", reqID)
		return
	}

	generated := holiday.GenerateRange(req.FromYear, req.ToYear)
	if err := h.Store.Replace(r.Context(), generated); err != nil {
		slog.Error("replace holidays failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not regenerate holidays", reqID)
		return
	}
	api.Success(w, map[string]int{"holidays": len(generated)}, reqID)
}
