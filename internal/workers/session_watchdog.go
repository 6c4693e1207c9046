// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The passvault Authors

package workers

import (
	"time"

	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/session"
)

// SessionWatchdog periodically checks the session idle deadline and ends
// the session when it has passed. Key invalidation itself happens in the
// session manager's subscribers; the watchdog only drives the clock.
type SessionWatchdog struct {
	sessions *session.Manager
	interval time.Duration
	logger   *logger.Logger
	stop     chan struct{}
}

func NewSessionWatchdog(sessions *session.Manager, interval time.Duration, log *logger.Logger) *SessionWatchdog {
	return &SessionWatchdog{
		sessions: sessions,
		interval: interval,
		logger:   log,
		stop:     make(chan struct{}),
	}
}

// Run starts the watchdog loop in a background goroutine and returns
// immediately. The loop keeps running across sessions: after an expiry it
// simply waits for the next unlock to start a new deadline.
func (w *SessionWatchdog) Run() {
	ticker := time.NewTicker(w.interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				if w.sessions.CheckExpiry() {
					w.logger.Info().
						Str("func", "SessionWatchdog.Run").
						Msg("session expired due to inactivity")
				}
			}
		}
	}()
}

// Stop terminates the watchdog loop. Safe to call once.
func (w *SessionWatchdog) Stop() {
	close(w.stop)
}
