package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"liquidador/internal/domain/auth"
	"liquidador/internal/requestctx"
	"liquidador/internal/transport/http/api"
)

type Handler struct {
	Store    *auth.Store
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store *auth.Store, secret string, ttl time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: ttl}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// handleLogin exchanges the admin password for a bearer token. The
// username defaults to the single admin account when omitted.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := requestctx.GetRequestID(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "invalid JSON body", reqID)
		return
	}
	if req.Username == "" {
		req.Username = "admin"
	}
	if strings.TrimSpace(req.Password) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_body", "password is required", reqID)
		return
	}

	hash, err := h.Store.PasswordHash(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
			return
		}
		slog.Error("login lookup failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not verify credentials", reqID)
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{Username: req.Username, Role: auth.RoleAdmin}, h.TokenTTL)
	if err != nil {
		slog.Error("token generation failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal", "could not issue token", reqID)
		return
	}

	api.Success(w, loginResponse{Token: token, ExpiresIn: int64(h.TokenTTL.Seconds())}, reqID)
}
