// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/member-registry/credstore"
	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/models"
	"github.com/danielhkuo/member-registry/session"
)

type AuthHandler struct {
	creds    *credstore.Store
	sessions *session.Manager
}

func NewAuthHandler(creds *credstore.Store, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{creds: creds, sessions: sessions}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter both username and password")
		return
	}

	role, err := h.creds.Authenticate(req.Username, req.Password)
	if errors.Is(err, credstore.ErrInvalidCredentials) {
		// One message for unknown user and wrong password
		slog.Info("login failed", "username", req.Username, "ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("authentication failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Authentication error")
		return
	}

	token, err := h.sessions.Create(req.Username, role)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Authentication error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("login successful", "username", req.Username, "role", role)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Username: req.Username,
		Role:     role,
		Message:  "Login successful",
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		h.sessions.Destroy(cookie.Value)
	}

	// Expire the cookie client-side as well
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Logged out",
	})
}

// Me handles GET /auth/me
// Requires a session (enforced by the router).
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		LoggedIn: true,
		Username: s.Username,
		Role:     s.Role,
	})
}
