package transmitter

import (
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/signal"
)

// HookPosSample marks the per-tick waveform sample of the transmitter.
var HookPosSample = &sim.HookPos{Name: "Transmitter Sample"}

// A Sample is the observable output of the transmitter on one tick. It is
// delivered as the Item of a HookPosSample hook.
type Sample struct {
	Cycle uint64
	Time  sim.VTimeInSec
	State string
	TxOut bool
	Busy  bool
}

// Comp is the serial transmitter core. It frames the word on DataIn with a
// start bit, an optional parity bit, and a stop bit, and shifts the frame
// out on TxOut one level per cycle, asserting Busy for the whole frame.
//
// EnableIn is level-sensitive and sampled only while the controller is
// idle: a transmission never restarts on its own, and toggling enable
// mid-frame has no effect. ResetIn aborts any in-progress frame and is the
// only way to do so.
type Comp struct {
	*sim.TickingComponent

	EnableIn *signal.Wire
	ResetIn  *signal.Wire
	DataIn   *signal.Bus
	TxOut    *signal.Wire
	Busy     *signal.Wire

	parityMode Parity
	idleLevel  bool

	enableSync syncChain
	resetSync  resetSyncChain

	state    State
	datapath shiftDatapath
	parity   parityAccumulator
}

// State returns the controller state after the most recent tick.
func (c *Comp) State() State {
	return c.state
}

// Width returns the data word width of the transmitter.
func (c *Comp) Width() int {
	return c.datapath.width
}

// NotifySignal wakes the transmitter when an input signal changes.
func (c *Comp) NotifySignal(_ sim.Named) {
	c.TickLater()
}

// Tick advances the core by one clock cycle: the raw inputs are shifted
// through the synchronizers, the controller evaluates one transition, and
// the output levels of the post-transition state are driven. The core keeps
// ticking while a frame is in flight or a level is still propagating
// through a synchronizer.
func (c *Comp) Tick() bool {
	syncedReset := c.resetSync.sample(c.ResetIn.Sample())
	syncedEnable := c.enableSync.sample(c.EnableIn.Sample())

	if syncedReset {
		c.state = StateIdle
		c.datapath.clear()
		c.parity.reset()
		c.enableSync.clear()
	} else {
		c.state = c.nextState(syncedEnable)
	}

	c.driveOutputs()
	c.sampleHook()

	return c.state != StateIdle ||
		c.EnableIn.Sample() || c.enableSync.pending() ||
		c.ResetIn.Sample() || c.resetSync.pending()
}

func (c *Comp) driveOutputs() {
	switch c.state {
	case StateIdle:
		c.TxOut.Drive(c.idleLevel)
		c.Busy.Drive(false)
	case StateStart:
		c.TxOut.Drive(false)
		c.Busy.Drive(true)
	case StateData:
		bit := c.datapath.currentBit()
		c.parity.accumulate(bit)
		c.TxOut.Drive(bit)
		c.Busy.Drive(true)
	case StateParity:
		c.TxOut.Drive(c.parity.result())
		c.Busy.Drive(true)
	case StateStop:
		c.TxOut.Drive(c.idleLevel)
		c.Busy.Drive(true)
	}
}

func (c *Comp) sampleHook() {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosSample,
		Item: Sample{
			Cycle: c.CurrentCycle(),
			Time:  c.CurrentTime(),
			State: c.state.String(),
			TxOut: c.TxOut.Sample(),
			Busy:  c.Busy.Sample(),
		},
	})
}
