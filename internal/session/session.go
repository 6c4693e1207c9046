// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

// Package session tracks the active unlocked session: an idle deadline
// that slides on user activity, optionally clamped by the expiry of the
// server-issued bearer token. Subscribers (the keyring, the UI) are
// notified exactly once when the session ends, however it ends.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager owns the lifecycle of one client session.
type Manager struct {
	mu sync.Mutex

	idle     time.Duration
	deadline time.Time
	started  bool
	ended    bool
	subs     []func()

	// now is injectable for tests.
	now func() time.Time
}

// NewManager constructs a Manager with the given idle timeout.
func NewManager(idle time.Duration) *Manager {
	return &Manager{idle: idle, now: time.Now}
}

// Start begins a new session, resetting any previous end state. The idle
// deadline starts sliding from now.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
	m.ended = false
	m.deadline = m.now().Add(m.idle)
}

// Touch slides the idle deadline forward on user activity. A touch after
// the session has ended is ignored; the user must unlock again.
func (m *Manager) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started || m.ended || m.now().After(m.deadline) {
		return
	}
	m.deadline = m.now().Add(m.idle)
}

// AdoptToken clamps the session deadline to the expiry claim of the
// server-issued bearer token, so the client never believes it has an
// active session longer than the server does. The token is parsed without
// signature verification: only the server holds the signing key, and the
// client uses the claim solely to schedule its own lockout.
func (m *Manager) AdoptToken(signed string) error {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(signed, &jwt.RegisteredClaims{})
	if err != nil {
		return fmt.Errorf("parse session token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fmt.Errorf("session token has no expiry claim")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started && exp.Time.Before(m.deadline) {
		m.deadline = exp.Time
	}
	return nil
}

// Active reports whether the session is started, not ended, and within its
// deadline.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started && !m.ended && m.now().Before(m.deadline)
}

// Remaining returns the time left until the idle deadline, or zero when
// the session is not active.
func (m *Manager) Remaining() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started || m.ended {
		return 0
	}
	left := m.deadline.Sub(m.now())
	if left < 0 {
		return 0
	}
	return left
}

// Subscribe registers fn to be called when the session ends. Subscribers
// are invoked outside the manager's lock.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Expire ends the session immediately (explicit lock or logout) and
// notifies subscribers.
func (m *Manager) Expire() {
	m.endAndNotify(true)
}

// CheckExpiry ends the session if the idle deadline has passed. It is
// called periodically by the session watchdog worker. Returns true if this
// call ended the session.
func (m *Manager) CheckExpiry() bool {
	return m.endAndNotify(false)
}

func (m *Manager) endAndNotify(force bool) bool {
	m.mu.Lock()
	if !m.started || m.ended {
		m.mu.Unlock()
		return false
	}
	if !force && m.now().Before(m.deadline) {
		m.mu.Unlock()
		return false
	}
	m.ended = true
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return true
}
