// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/danielhkuo/member-registry/auth"
	"github.com/danielhkuo/member-registry/models"
)

var (
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Default admin account seeded on first run. Rotate the password
// immediately in any real deployment.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@yoka.knust.edu.gh"
)

// User is one stored credential record. Password holds the hex digest,
// never the plaintext.
type User struct {
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Store is a file-backed username -> credential mapping. Every operation
// re-reads the file and every mutation rewrites it in full, so the file
// is always the single source of truth. The mutex serializes
// read-modify-write cycles within this process.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Initialize creates the store seeded with the default admin account if
// the backing file does not exist. Safe to call multiple times.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat credential store: %w", err)
	}

	seed := map[string]User{
		DefaultAdminUsername: {
			Password: auth.HashPassword(DefaultAdminPassword),
			Role:     models.RoleAdmin,
			Email:    defaultAdminEmail,
		},
	}
	return s.save(seed)
}

// AddUser inserts a new credential record. Returns ErrDuplicateUser if
// the username is already taken; the store is left untouched in that case.
func (s *Store) AddUser(username, password, role, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	if _, exists := users[username]; exists {
		return ErrDuplicateUser
	}

	users[username] = User{
		Password: auth.HashPassword(password),
		Role:     role,
		Email:    email,
	}

	return s.save(users)
}

// Authenticate verifies a username/password pair and returns the stored
// role. Unknown-user and wrong-password both collapse into
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *Store) Authenticate(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return "", err
	}

	u, ok := users[username]
	if !ok || !auth.VerifyPassword(password, u.Password) {
		return "", ErrInvalidCredentials
	}

	return u.Role, nil
}

// ListUsers returns the full credential mapping, password digests
// included. Callers rendering the result must strip the digests.
func (s *Store) ListUsers() (map[string]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// load reads and decodes the whole backing file. Callers hold s.mu.
func (s *Store) load() (map[string]User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credential store: %w", err)
	}

	users := make(map[string]User)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to decode credential store: %w", err)
	}

	return users, nil
}

// save rewrites the whole backing file. Callers hold s.mu.
func (s *Store) save(users map[string]User) error {
	// 4-space indent keeps the file hand-editable and diff-friendly
	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode credential store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credential store: %w", err)
	}

	return nil
}
