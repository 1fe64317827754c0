package transmitter

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sync Chain", func() {
	var s syncChain

	BeforeEach(func() {
		s = syncChain{}
	})

	It("should delay a level by two ticks", func() {
		Expect(s.sample(true)).To(BeFalse())
		Expect(s.sample(true)).To(BeFalse())
		Expect(s.sample(true)).To(BeTrue())
	})

	It("should report pending levels", func() {
		s.sample(true)

		Expect(s.pending()).To(BeTrue())

		s.sample(false)
		s.sample(false)

		Expect(s.pending()).To(BeFalse())
	})

	It("should stretch a one-tick pulse to the output", func() {
		s.sample(true)
		Expect(s.sample(false)).To(BeFalse())
		Expect(s.sample(false)).To(BeTrue())
		Expect(s.sample(false)).To(BeFalse())
	})
})

var _ = Describe("Reset Sync Chain", func() {
	var r resetSyncChain

	BeforeEach(func() {
		r = resetSyncChain{}
	})

	It("should assert within the current tick", func() {
		Expect(r.sample(true)).To(BeTrue())
	})

	It("should deassert only after the synchronized release", func() {
		r.sample(true)
		r.sample(true)

		Expect(r.sample(false)).To(BeTrue())
		Expect(r.sample(false)).To(BeTrue())
		Expect(r.sample(false)).To(BeFalse())
	})
})

var _ = Describe("Parity Accumulator", func() {
	It("should XOR-reduce the accumulated bits", func() {
		p := parityAccumulator{}

		p.accumulate(true)
		p.accumulate(false)
		p.accumulate(true)

		Expect(p.result()).To(BeFalse())

		p.accumulate(true)

		Expect(p.result()).To(BeTrue())
	})

	It("should invert the result for odd parity", func() {
		p := parityAccumulator{odd: true}

		p.accumulate(true)

		Expect(p.result()).To(BeFalse())
	})

	It("should start over after a reset", func() {
		p := parityAccumulator{}

		p.accumulate(true)
		p.reset()

		Expect(p.result()).To(BeFalse())
	})
})

var _ = Describe("Shift Datapath", func() {
	It("should select the latched bits LSB first", func() {
		d := shiftDatapath{width: 8}
		d.latch(0xA5)

		got := []bool{}
		for {
			got = append(got, d.currentBit())
			if d.atLastBit() {
				break
			}
			d.advance()
		}

		Expect(got).To(Equal([]bool{
			true, false, true, false, false, true, false, true,
		}))
	})

	It("should mask the latched word to the width", func() {
		d := shiftDatapath{width: 4}
		d.latch(0xF5)

		Expect(d.data).To(Equal(uint64(0x5)))
	})

	It("should report the last bit for width-1 words immediately", func() {
		d := shiftDatapath{width: 1}
		d.latch(1)

		Expect(d.atLastBit()).To(BeTrue())
		Expect(d.currentBit()).To(BeTrue())
	})
})
