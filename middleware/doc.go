// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). Each request gets a UUID request id for correlating the
two lines.

# Session Guards

Protect endpoints behind a login, or behind the admin role:

	middleware.RequireSession(sessions, handler)
	middleware.RequireAdmin(sessions, handler)

Both resolve the session_token cookie against the session manager and
stash the session in the request context:

	s, ok := middleware.SessionFromContext(r.Context())

Missing or expired sessions get 401; a non-admin hitting an admin
endpoint gets 403.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with credentials, so the
session cookie survives cross-origin requests from the form frontend.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used when logging failed login attempts.
*/
package middleware
