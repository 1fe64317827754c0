package stimulus

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/transmitter"
)

// Builder builds word feeders.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
	target *transmitter.Comp
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		freq: 1 * sim.MHz,
	}
}

// WithEngine sets the engine that drives the feeder.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the clock frequency of the feeder.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTransmitter sets the transmitter the feeder drives.
func (b Builder) WithTransmitter(target *transmitter.Comp) Builder {
	b.target = target
	return b
}

// Build builds a feeder attached to the configured transmitter.
func (b Builder) Build(name string) *Comp {
	c := &Comp{
		enable: b.target.EnableIn,
		data:   b.target.DataIn,
		busy:   b.target.Busy,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	b.target.Busy.AddSink(c)

	return c
}
