package signal

import (
	"fmt"
	"sync"

	"github.com/siliclab/uartsim/sim"
)

// A Bus carries a multi-bit word between components. The width is fixed at
// construction and values driven onto the bus are masked to the width.
type Bus struct {
	sim.HookableBase

	lock  sync.Mutex
	name  string
	width int
	value uint64
	sinks []Sink
}

// NewBus creates a bus of the given width. The width must be in [1, 64].
func NewBus(name string, width int) *Bus {
	if width < 1 || width > 64 {
		panic(fmt.Sprintf("bus %s: width %d out of range [1, 64]",
			name, width))
	}

	return &Bus{
		name:  name,
		width: width,
	}
}

// Name returns the name of the bus.
func (b *Bus) Name() string {
	return b.name
}

// Width returns the number of bits the bus carries.
func (b *Bus) Width() int {
	return b.width
}

// AddSink registers a sink to be woken when the bus changes value.
func (b *Bus) AddSink(s Sink) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sinks = append(b.sinks, s)
}

// Sample returns the word currently latched on the bus.
func (b *Bus) Sample() uint64 {
	b.lock.Lock()
	defer b.lock.Unlock()

	return b.value
}

// Bit returns bit i of the latched word.
func (b *Bus) Bit(i int) bool {
	if i < 0 || i >= b.width {
		panic(fmt.Sprintf("bus %s: bit %d out of range [0, %d)",
			b.name, i, b.width))
	}

	b.lock.Lock()
	defer b.lock.Unlock()

	return b.value>>uint(i)&1 == 1
}

// Drive latches a word onto the bus, masked to the bus width. Driving the
// value the bus already carries has no effect.
func (b *Bus) Drive(value uint64) {
	b.lock.Lock()

	value &= b.mask()
	if b.value == value {
		b.lock.Unlock()
		return
	}

	b.value = value
	sinks := b.sinks
	b.lock.Unlock()

	b.InvokeHook(sim.HookCtx{
		Domain: b,
		Pos:    HookPosWireChange,
		Item:   value,
	})

	for _, s := range sinks {
		s.NotifySignal(b)
	}
}

func (b *Bus) mask() uint64 {
	if b.width == 64 {
		return ^uint64(0)
	}

	return 1<<uint(b.width) - 1
}
