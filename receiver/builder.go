package receiver

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/signal"
	"github.com/siliclab/uartsim/transmitter"
)

// Builder builds receivers.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	width     int
	parity    transmitter.Parity
	idleLevel bool
	line      *signal.Wire
}

// MakeBuilder returns a Builder with defaults matching the transmitter's:
// 8 data bits, even parity, idle level 1.
func MakeBuilder() Builder {
	return Builder{
		freq:      1 * sim.MHz,
		width:     8,
		parity:    transmitter.ParityEven,
		idleLevel: true,
	}
}

// WithEngine sets the engine that drives the receiver.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the sampling clock frequency. It must match the frequency
// of the transmitter driving the line.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithWidth sets the data word width.
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithParity sets the parity policy the receiver checks against.
func (b Builder) WithParity(parity transmitter.Parity) Builder {
	b.parity = parity
	return b
}

// WithIdleLevel sets the level the line rests at between frames.
func (b Builder) WithIdleLevel(level bool) Builder {
	b.idleLevel = level
	return b
}

// WithLine sets the serial line the receiver samples.
func (b Builder) WithLine(line *signal.Wire) Builder {
	b.line = line
	return b
}

// Build builds a receiver watching the configured line.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		Line:       b.line,
		width:      b.width,
		parityMode: b.parity,
		idleLevel:  b.idleLevel,
	}

	c.TickingComponent = sim.NewSecondaryTickingComponent(
		name, b.engine, b.freq, c)

	b.line.AddSink(c)

	return c
}
