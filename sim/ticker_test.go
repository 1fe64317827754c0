package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Ticking Component", func() {
	var (
		mockCtrl *gomock.Controller
		engine   *MockEngine
		ticker   *MockTicker
		tc       *TickingComponent
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		engine = NewMockEngine(mockCtrl)
		ticker = NewMockTicker(mockCtrl)
		tc = NewTickingComponent("TC", engine, 1, ticker)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should schedule a tick for the next cycle", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e TickEvent) {
				Expect(e.Time()).To(Equal(VTimeInSec(11)))
			})

		tc.TickLater()
	})

	It("should keep ticking while the ticker makes progress", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10))
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e TickEvent) {
				Expect(e.Time()).To(Equal(VTimeInSec(11)))
			})
		ticker.EXPECT().Tick().Return(true)

		tc.Handle(MakeTickEvent(tc, 10))
	})

	It("should not schedule a second tick for the same cycle", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).Times(2)
		engine.EXPECT().Schedule(gomock.Any()).
			Do(func(e TickEvent) {
				Expect(e.Time()).To(Equal(VTimeInSec(11)))
			})
		ticker.EXPECT().Tick().Return(true).Times(2)

		tc.Handle(MakeTickEvent(tc, 10))
		tc.Handle(MakeTickEvent(tc, 10))
	})

	It("should stop ticking when no progress is made", func() {
		ticker.EXPECT().Tick().Return(false)

		tc.Handle(MakeTickEvent(tc, 10))
	})
})
