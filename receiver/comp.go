// Package receiver implements the deserializer that complements the
// transmitter core. It samples the serial line once per cycle, detects the
// start bit, shifts the data bits back into a word, and checks the parity
// and stop bits. The testbench and the CLI use it to close the loop on a
// transmission.
package receiver

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/signal"
	"github.com/siliclab/uartsim/transmitter"
)

type rxState int

const (
	rxIdle rxState = iota
	rxData
	rxParity
	rxStop
)

// A Word is one frame decoded from the serial line.
type Word struct {
	Value        uint64
	ParityError  bool
	FramingError bool
}

// Comp deserializes frames from a serial line. It ticks as a secondary
// component so that, within one cycle, it samples the level the
// transmitter has already driven.
type Comp struct {
	*sim.TickingComponent

	Line *signal.Wire

	width      int
	parityMode transmitter.Parity
	idleLevel  bool

	state     rxState
	word      uint64
	bitIndex  int
	parity    bool
	parityErr bool

	words []Word
}

// Words returns the frames decoded so far.
func (c *Comp) Words() []Word {
	return c.words
}

// NotifySignal wakes the receiver when the line changes level. TickNow
// rather than TickLater: the start-bit edge must be sampled in the cycle
// it is driven, not one cycle late.
func (c *Comp) NotifySignal(_ sim.Named) {
	c.TickNow()
}

// Tick samples the line once and advances the deserializer.
func (c *Comp) Tick() bool {
	line := c.Line.Sample()

	switch c.state {
	case rxIdle:
		if line != c.idleLevel {
			c.word = 0
			c.bitIndex = 0
			c.parity = false
			c.parityErr = false
			c.state = rxData
		}

	case rxData:
		if line {
			c.word |= 1 << uint(c.bitIndex)
		}
		c.parity = c.parity != line
		c.bitIndex++

		if c.bitIndex == c.width {
			if c.parityMode == transmitter.ParityNone {
				c.state = rxStop
			} else {
				c.state = rxParity
			}
		}

	case rxParity:
		expected := c.parity
		if c.parityMode == transmitter.ParityOdd {
			expected = !expected
		}
		c.parityErr = line != expected
		c.state = rxStop

	case rxStop:
		c.words = append(c.words, Word{
			Value:        c.word,
			ParityError:  c.parityErr,
			FramingError: line != c.idleLevel,
		})
		c.state = rxIdle
	}

	return c.state != rxIdle || line != c.idleLevel
}
