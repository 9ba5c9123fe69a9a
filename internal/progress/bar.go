// Package progress provides Reporter implementations for the sync engine.
package progress

import (
	"io"
	"time"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// Bar renders a terminal progress bar for a listing traversal. The bar is
// created lazily on the first event because the listing total is not known
// until the traversal starts.
type Bar struct {
	output io.Writer
	bar    *pb.ProgressBar
}

// NewBar creates a bar reporter writing to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{output: w}
}

// Report implements syncer.Reporter.
func (b *Bar) Report(processed, total int, elapsed time.Duration) {
	if b.bar == nil {
		b.bar = pb.New(total)
		b.bar.Output = b.output
		b.bar.SetMaxWidth(80)
		b.bar.ShowTimeLeft = false
		b.bar.Start()
	}

	if total > 0 && processed > total {
		processed = total
	}
	b.bar.Set(processed)
}

// Finish stops the bar. Safe to call when no event was ever reported.
func (b *Bar) Finish() {
	if b.bar != nil {
		b.bar.Finish()
	}
}
