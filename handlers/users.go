// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/danielhkuo/member-registry/credstore"
	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/models"
)

type UserHandler struct {
	creds *credstore.Store
}

func NewUserHandler(creds *credstore.Store) *UserHandler {
	return &UserHandler{creds: creds}
}

// AddUser handles POST /users (admin only, enforced by the router)
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req models.AddUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if !isValidRole(req.Role) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be one of: user, admin")
		return
	}

	err := h.creds.AddUser(req.Username, req.Password, req.Role, req.Email)
	if errors.Is(err, credstore.ErrDuplicateUser) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to add user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	s, _ := middleware.SessionFromContext(r.Context())
	slog.Info("user created", "username", req.Username, "role", req.Role, "created_by", s.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "User created successfully",
	})
}

// ListUsers handles GET /users (admin only, enforced by the router)
// Password digests never leave the credential store boundary here.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.creds.ListUsers()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	infos := make([]models.UserInfo, 0, len(users))
	for username, u := range users {
		infos = append(infos, models.UserInfo{
			Username: username,
			Role:     u.Role,
			Email:    u.Email,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Username < infos[j].Username
	})

	middleware.JSONResponse(w, http.StatusOK, models.ListUsersResponse{
		Users: infos,
	})
}

func isValidRole(role string) bool {
	switch role {
	case models.RoleAdmin, models.RoleUser:
		return true
	}
	return false
}
