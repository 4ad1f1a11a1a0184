// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/member-registry/cliparse"
	"github.com/danielhkuo/member-registry/credstore"
	"github.com/danielhkuo/member-registry/handlers"
	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/recordstore"
	"github.com/danielhkuo/member-registry/session"
)

func NewRouter(creds *credstore.Store, records *recordstore.Store, sessions *session.Manager, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(creds, sessions)
	userHandler := handlers.NewUserHandler(creds)
	regHandler := handlers.NewRegistrationHandler(records)
	statsHandler := handlers.NewStatsHandler(creds, records, sessions)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/me", middleware.WithLogging(middleware.RequireSession(sessions, authHandler.Me)))

	// User management (admin only)
	mux.HandleFunc("POST /users", middleware.WithLogging(middleware.RequireAdmin(sessions, userHandler.AddUser)))
	mux.HandleFunc("GET /users", middleware.WithLogging(middleware.RequireAdmin(sessions, userHandler.ListUsers)))

	// Registrations (any logged-in user)
	mux.HandleFunc("POST /registrations", middleware.WithLogging(middleware.RequireSession(sessions, regHandler.Submit)))
	mux.HandleFunc("GET /registrations", middleware.WithLogging(middleware.RequireSession(sessions, regHandler.List)))
	mux.HandleFunc("GET /registrations/export", middleware.WithLogging(middleware.RequireSession(sessions, regHandler.Export)))

	// Admin overview
	mux.HandleFunc("GET /stats", middleware.WithLogging(middleware.RequireAdmin(sessions, statsHandler.Get)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("member-registry API v1"))
	})

	return mux
}
