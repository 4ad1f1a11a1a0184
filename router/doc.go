// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

# Routes

Public:

	GET  /health
	GET  /
	POST /auth/login
	POST /auth/logout

Logged-in users:

	GET  /auth/me
	POST /registrations
	GET  /registrations
	GET  /registrations/export

Admin only:

	POST /users
	GET  /users
	GET  /stats

# Construction

NewRouter takes the stores, the session manager, and the config, and
wires every handler behind logging plus the appropriate session guard:

	mux := router.NewRouter(creds, records, sessions, cfg)
*/
package router
