// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the member-registry API server.

member-registry is a single-organization member registration service:
authenticated users submit a multi-section registration form and
administrators manage user accounts and export collected records.

# Starting the Server

The server runs with sensible defaults and needs no mandatory settings:

	go run main.go

Or with flags:

	go run main.go -p 8501 -u users.json -r yoka_data.csv

A .env file in the working directory is loaded automatically.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8501)
  - USERS_FILE (-u): Credential store path (default: users.json)
  - DATA_FILE (-r): Registration record store path (default: yoka_data.csv)
  - SESSION_TTL_MINUTES (--session-ttl): Idle session lifetime (default: 720)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, user management, registrations)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, session guards
  - models: Request/response types and the registration record
  - auth: Password hashing and session token generation
  - credstore: Flat-file credential store (users.json)
  - recordstore: Append-only CSV record store
  - session: In-memory server-side session store
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
