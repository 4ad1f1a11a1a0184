// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token generation.

# Password Hashing

Passwords are stored as lowercase hex SHA-256 digests:

	digest := auth.HashPassword("secret")
	ok := auth.VerifyPassword("secret", digest)

HashPassword is deterministic, so digests written by older deployments
keep verifying. VerifyPassword uses a constant-time comparison.

# Session Tokens

Session tokens are 24 random bytes, URL-safe base64 encoded without
padding:

	token, err := auth.GenerateSessionToken()

Tokens carry no information; they are only keys into the server-side
session store.
*/
package auth
