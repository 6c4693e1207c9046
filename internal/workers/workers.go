package workers

import (
	"github.com/mirovsky/passvault/internal/config"
	"github.com/mirovsky/passvault/internal/logger"
	"github.com/mirovsky/passvault/internal/session"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers assembles the background workers of the client runtime.
// Currently that is the session watchdog; additional workers are appended
// here as the feature set grows.
func NewClientWorkers(cfg config.ClientWorkers, sessions *session.Manager, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionWatchdog(sessions, cfg.WatchdogInterval, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
