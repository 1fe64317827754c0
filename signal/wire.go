// Package signal models wire-level signals that connect simulated hardware
// components. A wire latches the level it is driven to; components sample
// the latched level once per tick. Driving a wire to a new level wakes the
// sinks that watch it, so sleeping components resume ticking on input
// activity.
package signal

import (
	"sync"

	"github.com/siliclab/uartsim/sim"
)

// HookPosWireChange marks the moment a wire latches a new level.
var HookPosWireChange = &sim.HookPos{Name: "Wire Change"}

// A Sink is notified when a signal it watches changes.
type Sink interface {
	NotifySignal(s sim.Named)
}

// A Wire carries a single boolean level between components.
type Wire struct {
	sim.HookableBase

	lock  sync.Mutex
	name  string
	level bool
	sinks []Sink
}

// NewWire creates a wire latched at the given initial level.
func NewWire(name string, level bool) *Wire {
	return &Wire{
		name:  name,
		level: level,
	}
}

// Name returns the name of the wire.
func (w *Wire) Name() string {
	return w.name
}

// AddSink registers a sink to be woken when the wire changes level.
func (w *Wire) AddSink(s Sink) {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.sinks = append(w.sinks, s)
}

// Sample returns the level currently latched on the wire.
func (w *Wire) Sample() bool {
	w.lock.Lock()
	defer w.lock.Unlock()

	return w.level
}

// Drive latches a level onto the wire. Driving the level the wire already
// carries has no effect.
func (w *Wire) Drive(level bool) {
	w.lock.Lock()

	if w.level == level {
		w.lock.Unlock()
		return
	}

	w.level = level
	sinks := w.sinks
	w.lock.Unlock()

	w.InvokeHook(sim.HookCtx{
		Domain: w,
		Pos:    HookPosWireChange,
		Item:   level,
	})

	for _, s := range sinks {
		s.NotifySignal(w)
	}
}
