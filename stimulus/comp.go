// Package stimulus implements the testbench word feeder. It drives the
// transmitter's data and enable inputs for a queue of words, respecting
// the enable-synchronizer latency: enable is held asserted until busy is
// observed high, then released, and the next word waits for busy to fall.
package stimulus

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/signal"
)

type feedState int

const (
	feedNext feedState = iota
	feedAsserting
	feedDraining
)

// Comp feeds words to a transmitter one frame at a time.
type Comp struct {
	*sim.TickingComponent

	enable *signal.Wire
	data   *signal.Bus
	busy   *signal.Wire

	state feedState
	words []uint64
	sent  int
}

// Pending returns the number of words not yet handed to the transmitter.
func (c *Comp) Pending() int {
	return len(c.words)
}

// Sent returns the number of words handed to the transmitter.
func (c *Comp) Sent() int {
	return c.sent
}

// Feed queues words and starts the feeder.
func (c *Comp) Feed(words ...uint64) {
	c.words = append(c.words, words...)
	c.TickLater()
}

// NotifySignal wakes the feeder when the busy line changes level.
func (c *Comp) NotifySignal(_ sim.Named) {
	c.TickLater()
}

// Tick advances the feeder handshake by one cycle.
func (c *Comp) Tick() bool {
	switch c.state {
	case feedNext:
		if len(c.words) == 0 {
			return false
		}
		if c.busy.Sample() {
			return false
		}

		c.data.Drive(c.words[0])
		c.enable.Drive(true)
		c.state = feedAsserting

		return true

	case feedAsserting:
		if !c.busy.Sample() {
			return true
		}

		c.enable.Drive(false)
		c.words = c.words[1:]
		c.sent++
		c.state = feedDraining

		return true

	case feedDraining:
		if c.busy.Sample() {
			return true
		}

		c.state = feedNext

		return true
	}

	panic("feeder in invalid state")
}
