package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBarStartsLazilyAndRenders(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(&buf)

	bar.Report(50, 200, time.Second)
	bar.Report(100, 200, 2*time.Second)
	bar.Finish()

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "200")
}

func TestBarClampsToTotal(t *testing.T) {
	var buf bytes.Buffer
	bar := NewBar(&buf)

	// A short final page can report past the stale remote total.
	bar.Report(205, 200, time.Second)
	bar.Finish()

	assert.NotPanics(t, func() { bar.Finish() })
}

func TestBarFinishWithoutEvents(t *testing.T) {
	bar := NewBar(&bytes.Buffer{})
	assert.NotPanics(t, func() { bar.Finish() })
}

func TestLogReporterCountsPages(t *testing.T) {
	log := NewLog(3)

	// Exercises the interval logic; output goes to slog.
	for i := 1; i <= 7; i++ {
		log.Report(i*50, 400, time.Duration(i)*time.Second)
	}

	assert.Equal(t, 7, log.pages)
}

func TestNewLogDefaultsInterval(t *testing.T) {
	assert.Equal(t, defaultLogEvery, NewLog(0).every)
	assert.Equal(t, 5, NewLog(5).every)
}
