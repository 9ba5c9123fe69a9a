package progress

import (
	"log/slog"
	"time"
)

const defaultLogEvery = 10

// Log reports traversal progress through slog, one line every Nth page plus
// the final page. Meant for non-TTY runs where a bar would be noise.
type Log struct {
	every int
	pages int
}

// NewLog creates a log reporter that emits every nth event. n <= 0 uses the
// default interval.
func NewLog(every int) *Log {
	if every <= 0 {
		every = defaultLogEvery
	}
	return &Log{every: every}
}

// Report implements syncer.Reporter.
func (l *Log) Report(processed, total int, elapsed time.Duration) {
	l.pages++
	if l.pages%l.every != 0 && processed < total {
		return
	}
	slog.Info("Sync progress",
		"processed", processed,
		"total", total,
		"elapsed", elapsed.Round(time.Second))
}
