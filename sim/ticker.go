package sim

import (
	"sync"
)

// TickEvent is a generic event that tick-by-tick components use to update
// their state.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a new TickEvent.
func MakeTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := TickEvent{}
	evt.ID = GetIDGenerator().Generate()
	evt.handler = handler
	evt.time = time

	return evt
}

// MakeSecondaryTickEvent creates a new TickEvent that is handled after all
// the same-time primary events.
func MakeSecondaryTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := MakeTickEvent(handler, time)
	evt.secondary = true

	return evt
}

// A Ticker updates its state on every tick. The return value reports
// whether any progress was made; a ticker that makes no progress stops
// being ticked until it is woken up again.
type Ticker interface {
	Tick() bool
}

// TickScheduler schedules tick events for a handler, never scheduling two
// ticks for the same cycle.
type TickScheduler struct {
	lock      sync.Mutex
	handler   Handler
	Freq      Freq
	Engine    Engine
	secondary bool

	nextTickTime VTimeInSec
}

// NewTickScheduler creates a TickScheduler.
func NewTickScheduler(
	handler Handler,
	engine Engine,
	freq Freq,
) *TickScheduler {
	s := new(TickScheduler)

	s.handler = handler
	s.Engine = engine
	s.Freq = freq
	s.nextTickTime = -1 // guarantees the first tick is scheduled

	return s
}

// NewSecondaryTickScheduler creates a TickScheduler whose ticks are handled
// after all the same-time primary ticks.
func NewSecondaryTickScheduler(
	handler Handler,
	engine Engine,
	freq Freq,
) *TickScheduler {
	s := NewTickScheduler(handler, engine, freq)
	s.secondary = true

	return s
}

// TickNow schedules a tick event at the current tick.
func (t *TickScheduler) TickNow() {
	t.lock.Lock()
	defer t.lock.Unlock()

	now := t.Engine.CurrentTime()
	if t.nextTickTime >= now {
		return
	}

	t.nextTickTime = t.Freq.ThisTick(now)
	t.schedule(t.nextTickTime)
}

// TickLater schedules a tick event at the cycle after the current time.
func (t *TickScheduler) TickLater() {
	t.lock.Lock()
	defer t.lock.Unlock()

	time := t.Freq.NextTick(t.Engine.CurrentTime())
	if t.nextTickTime >= time {
		return
	}

	t.nextTickTime = time
	t.schedule(t.nextTickTime)
}

func (t *TickScheduler) schedule(time VTimeInSec) {
	if t.secondary {
		t.Engine.Schedule(MakeSecondaryTickEvent(t.handler, time))
		return
	}

	t.Engine.Schedule(MakeTickEvent(t.handler, time))
}

// CurrentTime returns the current time of the engine.
func (t *TickScheduler) CurrentTime() VTimeInSec {
	return t.Engine.CurrentTime()
}

// CurrentCycle returns the cycle count of the current time.
func (t *TickScheduler) CurrentCycle() uint64 {
	return t.Freq.Cycle(t.Engine.CurrentTime())
}

// TickingComponent is a component that updates its state cycle by cycle. A
// concrete component only needs to provide the Tick function.
type TickingComponent struct {
	*ComponentBase
	*TickScheduler

	ticker Ticker
}

// NewTickingComponent creates a new TickingComponent.
func NewTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.ComponentBase = NewComponentBase(name)
	tc.TickScheduler = NewTickScheduler(tc, engine, freq)
	tc.ticker = ticker

	return tc
}

// NewSecondaryTickingComponent creates a TickingComponent whose ticks are
// handled after all the same-time primary ticks. Components that sample
// levels other components drive in the same cycle tick as secondary.
func NewSecondaryTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.ComponentBase = NewComponentBase(name)
	tc.TickScheduler = NewSecondaryTickScheduler(tc, engine, freq)
	tc.ticker = ticker

	return tc
}

// Handle triggers the tick function of the TickingComponent.
func (c *TickingComponent) Handle(_ Event) error {
	madeProgress := c.ticker.Tick()
	if madeProgress {
		c.TickLater()
	}

	return nil
}
