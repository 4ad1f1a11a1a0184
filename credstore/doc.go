// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package credstore persists the username -> credential mapping in a flat
JSON file.

# File Format

The backing file is a pretty-printed JSON object:

	{
	    "admin": {
	        "password": "<hex sha-256 digest>",
	        "role": "admin",
	        "email": "admin@yoka.knust.edu.gh"
	    }
	}

Every operation re-reads the file and every mutation rewrites it in
full; there is no in-memory cache across requests. A store-level mutex
serializes read-modify-write cycles, so two in-process writers cannot
lose each other's updates. Cross-process writers are not coordinated.

# Operations

	store := credstore.New("users.json")
	store.Initialize()                              // seed default admin on first run
	store.AddUser("bob", "pw", "user", "b@x.com")   // ErrDuplicateUser if taken
	role, err := store.Authenticate("bob", "pw")    // ErrInvalidCredentials on failure
	users, err := store.ListUsers()                 // full mapping, digests included

Authenticate deliberately returns the same error for an unknown user and
a wrong password.

# Errors

ErrDuplicateUser and ErrInvalidCredentials are sentinel values for
errors.Is checks. Any I/O or decode failure comes back wrapped with
context; no operation panics.
*/
package credstore
