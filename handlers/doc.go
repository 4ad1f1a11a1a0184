// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

Each handler is a struct holding its dependencies, constructed with a
New* function and wired in the router:

  - AuthHandler: login, logout, current-session lookup
  - UserHandler: admin user management (add, list without digests)
  - RegistrationHandler: form submission, listing, CSV export
  - StatsHandler: admin overview (counts, store size, last submission)

Authorization is the router's job: handlers that say "requires a
session" or "admin only" are wrapped with middleware.RequireSession or
middleware.RequireAdmin there, and read the resolved session from the
request context.

Validation semantics worth knowing:

  - Submit validates required fields before any store write; a rejected
    submission leaves the record store byte-for-byte unchanged.
  - Login returns the same "Invalid credentials" message for unknown
    usernames and wrong passwords.
  - ListUsers strips password digests; they exist only inside the
    credential store's own API.
*/
package handlers
