// Package waveform captures the per-tick output of a transmitter and
// writes it out as CSV, VCD, or database rows. A Tracer hooks onto the
// transmitter's sample position and fans each sample out to its writers.
package waveform

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/transmitter"
)

// A Writer consumes one waveform sample per tick.
type Writer interface {
	Write(s transmitter.Sample)
	Flush()
}

// Tracer is a hook that forwards transmitter samples to waveform writers.
type Tracer struct {
	writers []Writer
}

// NewTracer creates a Tracer that fans samples out to the given writers.
func NewTracer(writers ...Writer) *Tracer {
	return &Tracer{writers: writers}
}

// Func implements sim.Hook. Samples from positions other than the
// transmitter sample position are ignored.
func (t *Tracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != transmitter.HookPosSample {
		return
	}

	s := ctx.Item.(transmitter.Sample)
	for _, w := range t.writers {
		w.Write(s)
	}
}

// Flush flushes all the writers.
func (t *Tracer) Flush() {
	for _, w := range t.writers {
		w.Flush()
	}
}
