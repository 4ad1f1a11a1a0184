// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "admin123"},
		{"empty", ""},
		{"unicode", "pässwörd✓"},
		{"punctuation", `p@$$,w"o'rd!`},
		{"long", strings.Repeat("x", 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := HashPassword(tt.password)

			// SHA-256 hex is always 64 characters
			if len(digest) != 64 {
				t.Errorf("HashPassword() length = %d, want 64", len(digest))
			}

			// Should be lowercase hex
			for _, c := range digest {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashPassword() contains invalid hex char: %c", c)
				}
			}

			// Should be deterministic
			digest2 := HashPassword(tt.password)
			if digest != digest2 {
				t.Error("HashPassword() is not deterministic")
			}
		})
	}

	// Known vector keeps us compatible with existing users.json files
	got := HashPassword("admin123")
	want := "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	if got != want {
		t.Errorf("HashPassword(admin123) = %s, want %s", got, want)
	}

	// Different passwords should produce different digests
	if HashPassword("a") == HashPassword("b") {
		t.Error("HashPassword() produced same digest for different passwords")
	}
}

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "pw1"},
		{"unicode", "héllo wörld"},
		{"punctuation", `a,b"c'd`},
		{"spaces", "  spaced out  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := HashPassword(tt.password)

			if !VerifyPassword(tt.password, digest) {
				t.Error("VerifyPassword() rejected the correct password")
			}
			if VerifyPassword(tt.password+"x", digest) {
				t.Error("VerifyPassword() accepted a wrong password")
			}
			if VerifyPassword(tt.password, "") {
				t.Error("VerifyPassword() accepted an empty digest")
			}
		})
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateSessionToken() returned empty string")
	}

	// Should be URL-safe (no padding)
	if strings.Contains(token, "=") {
		t.Error("GenerateSessionToken() contains padding characters")
	}

	// Should be reasonably long (24 bytes encoded)
	if len(token) < 30 {
		t.Errorf("GenerateSessionToken() too short: %d chars", len(token))
	}

	// Test randomness - should not produce duplicates
	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("GenerateSessionToken() error on iteration %d: %v", i, err)
		}
		if tokens[token] {
			t.Errorf("GenerateSessionToken() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

// Benchmark tests
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		HashPassword("benchmark-password")
	}
}

func BenchmarkVerifyPassword(b *testing.B) {
	digest := HashPassword("benchmark-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VerifyPassword("benchmark-password", digest)
	}
}

func BenchmarkGenerateSessionToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateSessionToken()
	}
}
