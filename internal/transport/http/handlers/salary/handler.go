package salary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liquidador/internal/domain/salary"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	"liquidador/internal/transport/http/middleware"
)

type Handler struct {
	Store *salary.Store
}

func NewHandler(store *salary.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/grades", h.handleList)
	r.With(middleware.RequireAdmin).Post("/grades", h.handleCreate)
	r.With(middleware.RequireAdmin).Put("/grades/{gradeID}", h.handleUpdate)
	r.With(middleware.RequireAdmin).Delete("/grades/{gradeID}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	grades, err := h.Store.List(r.Context())
	if err != nil {
		slog.Error("list grades failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not list salary grades", reqID)
		return
	}
	if grades == nil {
		grades = []salary.Grade{}
	}
	api.Success(w, grades, reqID)
}

type gradeRequest struct {
	Name          string  `json:"name"`
	MonthlySalary float64 `json:"monthlySalary"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", reqID)
		return
	}

	id, err := h.Store.Create(r.Context(), req.Name, req.MonthlySalary)
	if err != nil {
		switch {
		case errors.Is(err, salary.ErrInvalidGrade):
			api.Fail(w, http.StatusBadRequest, "invalid_grade", err.Error(), reqID)
		case errors.Is(err, salary.ErrGradeExists):
			api.Fail(w, http.StatusConflict, "grade_exists", err.Error(), reqID)
		default:
			slog.Error("create grade failed", "err", err, "requestId", reqID)
			api.Fail(w, http.StatusInternalServerError, "internal", "could not create salary grade", reqID)
		}
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	id := chi.URLParam(r, "gradeID")

	var req gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", reqID)
		return
	}

	if err := h.Store.Update(r.Context(), id, req.Name, req.MonthlySalary); err != nil {
		switch {
		case errors.Is(err, salary.ErrInvalidGrade):
			api.Fail(w, http.StatusBadRequest, "invalid_grade", err.Error(), reqID)
		case errors.Is(err, salary.ErrGradeNotFound):
			api.Fail(w, http.StatusNotFound, "not_found", "salary grade not found", reqID)
		default:
			slog.Error("update grade failed", "err", err, "requestId", reqID)
			api.Fail(w, http.StatusInternalServerError, "internal", "could not update salary grade", reqID)
		}
		return
	}
	api.Success(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())
	id := chi.URLParam(r, "gradeID")

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, salary.ErrGradeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "salary grade not found", reqID)
			return
		}
		slog.Error("delete grade failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not delete salary grade", reqID)
		return
	}
	api.Success(w, map[string]string{"deleted": id}, reqID)
}
