// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"
	"time"

	"github.com/danielhkuo/member-registry/auth"
)

// Session is the per-login context the presentation layer carries around.
// The stores never read or write it.
type Session struct {
	Username  string
	Role      string
	CreatedAt time.Time
	lastSeen  time.Time
}

// Manager holds active sessions in memory, keyed by token. Sessions do
// not survive a restart; everyone just logs in again.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create starts a session for an authenticated user and returns its token.
func (m *Manager) Create(username, role string) (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	now := time.Now()
	m.mu.Lock()
	m.sessions[token] = &Session{
		Username:  username,
		Role:      role,
		CreatedAt: now,
		lastSeen:  now,
	}
	m.mu.Unlock()

	return token, nil
}

// Get resolves a token to its session and refreshes the idle timer.
// Expired sessions are removed lazily on lookup.
func (m *Manager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return Session{}, false
	}

	if time.Since(s.lastSeen) > m.ttl {
		delete(m.sessions, token)
		return Session{}, false
	}

	s.lastSeen = time.Now()
	return *s, true
}

// Destroy ends a session. Unknown tokens are a no-op.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Count reports how many unexpired sessions are live.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for token, s := range m.sessions {
		if time.Since(s.lastSeen) > m.ttl {
			delete(m.sessions, token)
			continue
		}
		n++
	}
	return n
}
