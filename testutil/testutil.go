// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/member-registry/cliparse"
	"github.com/danielhkuo/member-registry/credstore"
	"github.com/danielhkuo/member-registry/middleware"
	"github.com/danielhkuo/member-registry/models"
	"github.com/danielhkuo/member-registry/recordstore"
	"github.com/danielhkuo/member-registry/session"
)

// SetupStores creates initialized credential and record stores backed by
// files in a per-test temp directory.
func SetupStores(t *testing.T) (*credstore.Store, *recordstore.Store) {
	t.Helper()

	dir := t.TempDir()

	creds := credstore.New(filepath.Join(dir, "users.json"))
	if err := creds.Initialize(); err != nil {
		t.Fatalf("Failed to initialize credential store: %v", err)
	}

	records := recordstore.New(filepath.Join(dir, "data.csv"))
	if err := records.Initialize(); err != nil {
		t.Fatalf("Failed to initialize record store: %v", err)
	}

	return creds, records
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:       8501,
		UsersFile:  "users.json",
		DataFile:   "yoka_data.csv",
		SessionTTL: time.Hour,
	}
}

// NewSessionManager returns a session manager with a TTL long enough
// for any test.
func NewSessionManager() *session.Manager {
	return session.NewManager(time.Hour)
}

// SeedUser adds a user to the credential store
func SeedUser(t *testing.T, creds *credstore.Store, username, password, role, email string) {
	t.Helper()

	if err := creds.AddUser(username, password, role, email); err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
}

// LoginAs creates a live session and returns its token
func LoginAs(t *testing.T, sessions *session.Manager, username, role string) string {
	t.Helper()

	token, err := sessions.Create(username, role)
	if err != nil {
		t.Fatalf("Failed to create session for %s: %v", username, err)
	}
	return token
}

// ValidRegistration returns a registration with every required field set
func ValidRegistration() models.Registration {
	return models.Registration{
		OfficialName: "Ama Mensah",
		DateOfBirth:  "2003-06-21",
		Age:          21,
		PhoneNumbers: "0241234567, 0207654321",
		Email:        "ama@example.com",
		SchoolName:   "KNUST",
		Program:      "Computer Science",
		CurrentClass: "Level 300",
		ChurchBranch: "Ayeduase",
		BranchPastor: "Pastor Owusu",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeSessionRequest creates an HTTP test request carrying a session cookie
func MakeSessionRequest(method, path string, body interface{}, token string) *http.Request {
	req := MakeRequest(method, path, body, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
