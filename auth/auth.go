// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// HashPassword returns the lowercase hex SHA-256 digest of a password.
// Deterministic: the same password always produces the same digest, which
// keeps existing users.json files readable across deployments.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks a password against a stored hex digest.
// Uses a constant-time comparison so the check does not leak how many
// digest bytes matched.
func VerifyPassword(password, digest string) bool {
	expected := HashPassword(password)
	return hmac.Equal([]byte(expected), []byte(digest))
}

// GenerateSessionToken creates a random secure token for a logged-in session.
// The token is the only thing that ties a browser to its server-side session.
func GenerateSessionToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
