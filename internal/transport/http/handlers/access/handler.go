package access

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liquidador/internal/domain/access"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
	"liquidador/internal/transport/http/middleware"
)

type Handler struct {
	Service *access.Service
}

func NewHandler(service *access.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/accesses", h.handleRecord)
	r.With(middleware.RequireAdmin).Get("/accesses", h.handleList)
	r.With(middleware.RequireAdmin).Delete("/accesses", h.handleClear)
}

// handleRecord logs one visit. The endpoint is public; the frontend
// calls it on page load so admins can see who opened the calculator.
func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	if err := h.Service.Record(r.Context(), middleware.ClientIP(r), reqID); err != nil {
		slog.Error("record access failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not record access", reqID)
		return
	}
	api.Created(w, map[string]bool{"recorded": true}, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	entries, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("list accesses failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not list accesses", reqID)
		return
	}
	if entries == nil {
		entries = []access.Entry{}
	}
	api.Success(w, entries, reqID)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	if err := h.Service.Clear(r.Context()); err != nil {
		slog.Error("clear accesses failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not clear access log", reqID)
		return
	}
	api.Success(w, map[string]bool{"cleared": true}, reqID)
}
