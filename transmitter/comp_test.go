package transmitter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/transmitter"
)

// harness steps the transmitter one clock cycle at a time, recording the
// observable outputs after every tick.
type harness struct {
	tx *transmitter.Comp

	states []transmitter.State
	txOut  []bool
	busy   []bool
}

func (h *harness) tick() {
	h.tx.Tick()
	h.states = append(h.states, h.tx.State())
	h.txOut = append(h.txOut, h.tx.TxOut.Sample())
	h.busy = append(h.busy, h.tx.Busy.Sample())
}

func (h *harness) tickN(n int) {
	for i := 0; i < n; i++ {
		h.tick()
	}
}

// tickUntilBusy raises enable, ticks until busy asserts, then lowers
// enable so the frame does not restart. The return value is the number of
// ticks it took for busy to rise.
func (h *harness) startFrame(word uint64) int {
	h.tx.DataIn.Drive(word)
	h.tx.EnableIn.Drive(true)

	for i := 1; ; i++ {
		h.tick()
		if h.tx.Busy.Sample() {
			h.tx.EnableIn.Drive(false)
			return i
		}
		if i > 8 {
			Fail("busy did not assert")
		}
	}
}

func bits(levels ...int) []bool {
	b := make([]bool, len(levels))
	for i, l := range levels {
		b[i] = l == 1
	}

	return b
}

var _ = Describe("Transmitter", func() {
	var (
		engine *sim.SerialEngine
		tx     *transmitter.Comp
		h      *harness
	)

	build := func(b transmitter.Builder) {
		tx = b.WithEngine(engine).Build("Tx")
		h = &harness{tx: tx}
	}

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		build(transmitter.MakeBuilder())
	})

	It("should rest at the idle level while disabled", func() {
		h.tickN(4)

		Expect(h.tx.TxOut.Sample()).To(BeTrue())
		Expect(h.tx.Busy.Sample()).To(BeFalse())
		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))
	})

	It("should observe enable only after the synchronizer latency", func() {
		ticks := h.startFrame(0xA5)

		Expect(ticks).To(BeNumerically("<=", 3))
	})

	It("should frame 0xA5 with even parity", func() {
		h.startFrame(0xA5)
		h.tickN(10)

		// start, 8 data bits LSB first, parity (0xA5 has 4 set bits), stop.
		Expect(h.txOut[len(h.txOut)-11:]).To(Equal(
			bits(0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 1)))
	})

	It("should hold busy for the whole frame and deassert in idle", func() {
		h.startFrame(0xA5)
		h.tickN(10)

		Expect(h.busy[len(h.busy)-11:]).To(HaveEach(BeTrue()))

		h.tick()
		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))
		Expect(h.tx.Busy.Sample()).To(BeFalse())
	})

	It("should pass through exactly one state per tick", func() {
		h.startFrame(0xA5)
		h.tickN(11)

		Expect(h.states[len(h.states)-12:]).To(Equal([]transmitter.State{
			transmitter.StateStart,
			transmitter.StateData, transmitter.StateData,
			transmitter.StateData, transmitter.StateData,
			transmitter.StateData, transmitter.StateData,
			transmitter.StateData, transmitter.StateData,
			transmitter.StateParity,
			transmitter.StateStop,
			transmitter.StateIdle,
		}))
	})

	It("should ignore enable toggles mid-frame", func() {
		h.startFrame(0xA5)
		h.tickN(3)

		// Glitch enable high for one tick in the middle of DATA.
		h.tx.EnableIn.Drive(true)
		h.tick()
		h.tx.EnableIn.Drive(false)
		h.tickN(6)

		Expect(h.txOut[len(h.txOut)-11:]).To(Equal(
			bits(0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 1)))
	})

	It("should omit the parity tick when parity is disabled", func() {
		build(transmitter.MakeBuilder().WithParity(transmitter.ParityNone))

		h.startFrame(0xA5)
		h.tickN(9)

		Expect(h.txOut[len(h.txOut)-10:]).To(Equal(
			bits(0, 1, 0, 1, 0, 0, 1, 0, 1, 1)))
		Expect(h.states).NotTo(ContainElement(transmitter.StateParity))
	})

	It("should invert the parity bit with odd parity", func() {
		build(transmitter.MakeBuilder().WithParity(transmitter.ParityOdd))

		h.startFrame(0xA5)
		h.tickN(10)

		Expect(h.txOut[len(h.txOut)-11:]).To(Equal(
			bits(0, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1)))
	})

	It("should support narrow words", func() {
		build(transmitter.MakeBuilder().WithWidth(4))

		h.startFrame(0x5)
		h.tickN(6)

		Expect(h.txOut[len(h.txOut)-7:]).To(Equal(
			bits(0, 1, 0, 1, 0, 0, 1)))
	})

	It("should abort the frame on reset within the same tick", func() {
		h.startFrame(0xA5)
		h.tickN(3)
		Expect(h.tx.State()).To(Equal(transmitter.StateData))

		h.tx.ResetIn.Drive(true)
		h.tick()

		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))
		Expect(h.tx.Busy.Sample()).To(BeFalse())
		Expect(h.tx.TxOut.Sample()).To(BeTrue())
	})

	It("should release reset only synchronously", func() {
		h.tx.ResetIn.Drive(true)
		h.tx.EnableIn.Drive(true)
		h.tickN(4)
		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))

		h.tx.ResetIn.Drive(false)

		// The synchronized deassertion takes up to two ticks to land, and
		// the enable chain refills behind it.
		h.tick()
		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))

		h.tickN(4)
		Expect(h.tx.Busy.Sample()).To(BeTrue())
	})

	It("should restart only when enable is seen asserted in idle again", func() {
		h.startFrame(0xA5)
		h.tickN(11)
		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))

		h.tickN(4)
		Expect(h.tx.State()).To(Equal(transmitter.StateIdle))
		Expect(h.tx.Busy.Sample()).To(BeFalse())
	})

	It("should stop ticking once idle with quiet inputs", func() {
		h.startFrame(0xA5)
		h.tickN(11)

		Expect(tx.Tick()).To(BeFalse())
	})

	It("should deliver a waveform sample per tick", func() {
		samples := []transmitter.Sample{}
		tx.AcceptHook(sampleHook(func(s transmitter.Sample) {
			samples = append(samples, s)
		}))

		h.startFrame(0xA5)
		h.tickN(10)

		Expect(len(samples)).To(Equal(len(h.txOut)))
		last := samples[len(samples)-1]
		Expect(last.State).To(Equal("STOP"))
		Expect(last.TxOut).To(BeTrue())
		Expect(last.Busy).To(BeTrue())
	})
})

type sampleHook func(s transmitter.Sample)

func (f sampleHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != transmitter.HookPosSample {
		return
	}

	f(ctx.Item.(transmitter.Sample))
}
