package transmitter

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/signal"
)

// Builder builds transmitter cores.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	width     int
	parity    Parity
	idleLevel bool
}

// MakeBuilder returns a Builder with the conventional defaults: 8 data
// bits, even parity, and an idle/stop level of 1.
func MakeBuilder() Builder {
	return Builder{
		freq:      1 * sim.MHz,
		width:     8,
		parity:    ParityEven,
		idleLevel: true,
	}
}

// WithEngine sets the engine that drives the transmitter.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the transmitter.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithWidth sets the data word width, in [1, 64].
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithParity sets the parity policy.
func (b Builder) WithParity(parity Parity) Builder {
	b.parity = parity
	return b
}

// WithIdleLevel sets the level the line rests at between frames, which is
// also the stop-bit level.
func (b Builder) WithIdleLevel(level bool) Builder {
	b.idleLevel = level
	return b
}

// Build builds a transmitter core together with its input and output
// signals. The core registers itself as a sink of its inputs so that it
// wakes up when the testbench drives them.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		parityMode: b.parity,
		idleLevel:  b.idleLevel,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.datapath = shiftDatapath{width: b.width}
	c.parity = parityAccumulator{odd: b.parity == ParityOdd}

	c.EnableIn = signal.NewWire(name+".EnableIn", false)
	c.ResetIn = signal.NewWire(name+".ResetIn", false)
	c.DataIn = signal.NewBus(name+".DataIn", b.width)
	c.TxOut = signal.NewWire(name+".TxOut", b.idleLevel)
	c.Busy = signal.NewWire(name+".Busy", false)

	c.EnableIn.AddSink(c)
	c.ResetIn.AddSink(c)
	c.DataIn.AddSink(c)

	return c
}
