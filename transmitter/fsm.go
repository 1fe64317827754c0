package transmitter

// State is the state of the transmit controller. Exactly one state is
// active per tick.
type State int

// Transmit controller states.
const (
	StateIdle State = iota
	StateStart
	StateData
	StateParity
	StateStop
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateStart:
		return "START"
	case StateData:
		return "DATA"
	case StateParity:
		return "PARITY"
	case StateStop:
		return "STOP"
	}

	return "INVALID"
}

// nextState evaluates one controller transition. It is the only place the
// state changes, and it runs once per tick. The synchronized enable level is
// read only in the IDLE state, so enable toggles mid-transmission cannot
// perturb the frame. Side effects on the datapath (latching, advancing)
// happen here; output levels are derived from the state the controller
// lands in.
func (c *Comp) nextState(syncedEnable bool) State {
	switch c.state {
	case StateIdle:
		if syncedEnable {
			c.datapath.latch(c.DataIn.Sample())
			c.parity.reset()
			return StateStart
		}

		return StateIdle

	case StateStart:
		return StateData

	case StateData:
		if c.datapath.atLastBit() {
			if c.parityMode == ParityNone {
				return StateStop
			}

			return StateParity
		}

		c.datapath.advance()

		return StateData

	case StateParity:
		return StateStop

	case StateStop:
		return StateIdle
	}

	panic("transmitter in invalid state")
}
