package receiver_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/siliclab/uartsim/receiver"
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/stimulus"
	"github.com/siliclab/uartsim/transmitter"
)

// The testbench closes the loop: a feeder drives the transmitter's inputs,
// the receiver samples the serial line, and the decoded words must match
// the fed words bit for bit.
var _ = Describe("Testbench", func() {
	var (
		engine *sim.SerialEngine
		tx     *transmitter.Comp
		rx     *receiver.Comp
		feeder *stimulus.Comp
	)

	assemble := func(parity transmitter.Parity) {
		engine = sim.NewSerialEngine()
		tx = transmitter.MakeBuilder().
			WithEngine(engine).
			WithParity(parity).
			Build("Tx")
		rx = receiver.MakeBuilder().
			WithEngine(engine).
			WithParity(parity).
			WithLine(tx.TxOut).
			Build("Rx")
		feeder = stimulus.MakeBuilder().
			WithEngine(engine).
			WithTransmitter(tx).
			Build("Feeder")
	}

	It("should round-trip words with even parity", func() {
		assemble(transmitter.ParityEven)

		feeder.Feed(0xA5, 0x3C, 0x00, 0xFF)
		Expect(engine.Run()).To(Succeed())

		Expect(feeder.Sent()).To(Equal(4))
		Expect(rx.Words()).To(Equal([]receiver.Word{
			{Value: 0xA5},
			{Value: 0x3C},
			{Value: 0x00},
			{Value: 0xFF},
		}))
	})

	It("should round-trip words with odd parity", func() {
		assemble(transmitter.ParityOdd)

		feeder.Feed(0x81)
		Expect(engine.Run()).To(Succeed())

		Expect(rx.Words()).To(Equal([]receiver.Word{
			{Value: 0x81},
		}))
	})

	It("should round-trip words without parity", func() {
		assemble(transmitter.ParityNone)

		feeder.Feed(0x7E)
		Expect(engine.Run()).To(Succeed())

		Expect(rx.Words()).To(Equal([]receiver.Word{
			{Value: 0x7E},
		}))
	})
})
