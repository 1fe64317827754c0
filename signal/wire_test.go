package signal

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/siliclab/uartsim/sim"
)

type recordingSink struct {
	notified []string
}

func (s *recordingSink) NotifySignal(n sim.Named) {
	s.notified = append(s.notified, n.Name())
}

var _ = Describe("Wire", func() {
	var (
		wire *Wire
		sink *recordingSink
	)

	BeforeEach(func() {
		wire = NewWire("TX", false)
		sink = &recordingSink{}
		wire.AddSink(sink)
	})

	It("should latch the driven level", func() {
		wire.Drive(true)

		Expect(wire.Sample()).To(BeTrue())
	})

	It("should wake sinks on a level change", func() {
		wire.Drive(true)

		Expect(sink.notified).To(Equal([]string{"TX"}))
	})

	It("should not wake sinks when the level is unchanged", func() {
		wire.Drive(false)

		Expect(sink.notified).To(BeEmpty())
	})
})

var _ = Describe("Bus", func() {
	It("should mask the driven word to the bus width", func() {
		bus := NewBus("DataIn", 8)

		bus.Drive(0x1A5)

		Expect(bus.Sample()).To(Equal(uint64(0xA5)))
	})

	It("should select individual bits", func() {
		bus := NewBus("DataIn", 8)

		bus.Drive(0xA5)

		Expect(bus.Bit(0)).To(BeTrue())
		Expect(bus.Bit(1)).To(BeFalse())
		Expect(bus.Bit(7)).To(BeTrue())
	})

	It("should reject out-of-range widths", func() {
		Expect(func() { NewBus("DataIn", 0) }).To(Panic())
		Expect(func() { NewBus("DataIn", 65) }).To(Panic())
	})
})
