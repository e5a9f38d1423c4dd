package settlement

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"liquidador/internal/domain/holiday"
	"liquidador/internal/domain/liquidation"
	"liquidador/internal/domain/salary"
	"liquidador/internal/platform/metrics"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	"liquidador/internal/transport/http/shared"
)

type Handler struct {
	Grades    *salary.Store
	Holidays  *holiday.Store
	Collector *metrics.Collector
}

func NewHandler(grades *salary.Store, holidays *holiday.Store, collector *metrics.Collector) *Handler {
	return &Handler{Grades: grades, Holidays: holidays, Collector: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settlements", func(r chi.Router) {
		r.Post("/validate", h.handleValidate)
		r.Post("/calculate", h.handleCalculate)
		r.Post("/export/csv", h.handleExportCSV)
		r.Post("/export/pdf", h.handleExportPDF)
	})
}

type shiftPayload struct {
	Entry string `json:"entry"`
	Exit  string `json:"exit"`
}

type dayPayload struct {
	Date   string        `json:"date"`
	Shift1 *shiftPayload `json:"shift1,omitempty"`
	Shift2 *shiftPayload `json:"shift2,omitempty"`
}

// settlementRequest is the shared payload of validate, calculate and
// both exports. Either gradeName or an explicit salary selects the base
// pay; gradeName wins when both are present.
type settlementRequest struct {
	Month     string       `json:"month"`
	GradeName string       `json:"gradeName,omitempty"`
	Salary    float64      `json:"salary,omitempty"`
	Days      []dayPayload `json:"days"`
}

type resolvedRequest struct {
	Month   time.Time
	Context liquidation.MonthlyContext
	Days    []liquidation.DayRecord
}

// resolve decodes and materializes the request: parses dates, looks up
// the grade salary and flags each day against the holiday calendar.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (resolvedRequest, bool) {
	reqID := requestctx.GetRequestID(r.Context())

	var req settlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", reqID)
		return resolvedRequest{}, false
	}

	month, err := shared.ParseMonth(req.Month)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", err.Error(), reqID)
		return resolvedRequest{}, false
	}
	if len(req.Days) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "days must not be empty", reqID)
		return resolvedRequest{}, false
	}

	monthlySalary := req.Salary
	if req.GradeName != "" {
		grade, err := h.Grades.FindByName(r.Context(), req.GradeName)
		if err != nil {
			if errors.Is(err, salary.ErrGradeNotFound) {
				api.Fail(w, http.StatusNotFound, "not_found", fmt.Sprintf("salary grade %q not found", req.GradeName), reqID)
				return resolvedRequest{}, false
			}
			slog.Error("grade lookup failed", "err", err, "requestId", reqID)
			api.Fail(w, http.StatusInternalServerError, "internal", "could not look up salary grade", reqID)
			return resolvedRequest{}, false
		}
		monthlySalary = grade.MonthlySalary
	}
	if monthlySalary <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_salary", "a gradeName or a positive salary is required", reqID)
		return resolvedRequest{}, false
	}

	stored, err := h.Holidays.List(r.Context())
	if err != nil {
		slog.Error("holiday load failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not load holiday calendar", reqID)
		return resolvedRequest{}, false
	}
	calendar := holiday.NewCalendar(stored)

	days := make([]liquidation.DayRecord, 0, len(req.Days))
	for _, d := range req.Days {
		date, err := shared.ParseDate(d.Date)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_date", fmt.Sprintf("day date %q must be YYYY-MM-DD", d.Date), reqID)
			return resolvedRequest{}, false
		}
		if date.Year() != month.Year() || date.Month() != month.Month() {
			api.Fail(w, http.StatusBadRequest, "invalid_date", fmt.Sprintf("day %s is outside month %s", d.Date, req.Month), reqID)
			return resolvedRequest{}, false
		}
		record := liquidation.DayRecord{
			Date:    date,
			Holiday: calendar.Contains(d.Date),
		}
		if d.Shift1 != nil {
			record.Shift1 = liquidation.Shift{Entry: d.Shift1.Entry, Exit: d.Shift1.Exit}
		}
		if d.Shift2 != nil {
			record.Shift2 = liquidation.Shift{Entry: d.Shift2.Entry, Exit: d.Shift2.Exit}
		}
		days = append(days, record)
	}

	return resolvedRequest{
		Month:   month,
		Context: liquidation.MonthlyContext{MonthlySalary: monthlySalary},
		Days:    days,
	}, true
}

// handleValidate checks a month's shifts without settling them.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	resolved, ok := h.resolve(w, r)
	if !ok {
		return
	}

	validation := liquidation.ValidateMonth(resolved.Days)
	api.Success(w, map[string]any{
		"valid":    validation.Valid(),
		"errors":   validation.Errors,
		"warnings": validation.Warnings,
		"summary":  validation.Summary(),
	}, reqID)
}

// handleCalculate settles one month and returns the full breakdown. A
// month with validation errors comes back with success=false and the
// findings.
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	resolved, ok := h.resolve(w, r)
	if !ok {
		return
	}

	result := liquidation.Calculate(resolved.Days, resolved.Context)
	if len(result.Errors) > 0 {
		api.WriteJSON(w, http.StatusUnprocessableEntity, api.Envelope{
			Success:   false,
			Data:      result,
			Error:     &api.Error{Code: "validation_failed", Message: "month has validation errors"},
			RequestID: reqID,
		})
		return
	}

	if h.Collector != nil {
		h.Collector.RecordSettlement()
	}
	api.Success(w, result, reqID)
}
