package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Event Queue", func() {
	var q *EventQueueImpl

	BeforeEach(func() {
		q = NewEventQueue()
	})

	It("should pop events in time order", func() {
		e1 := NewEventBase(3, nil)
		e2 := NewEventBase(1, nil)
		e3 := NewEventBase(2, nil)

		q.Push(e1)
		q.Push(e2)
		q.Push(e3)

		Expect(q.Len()).To(Equal(3))
		Expect(q.Pop().Time()).To(Equal(VTimeInSec(1)))
		Expect(q.Pop().Time()).To(Equal(VTimeInSec(2)))
		Expect(q.Pop().Time()).To(Equal(VTimeInSec(3)))
	})

	It("should peek without removing", func() {
		e := NewEventBase(5, nil)
		q.Push(e)

		Expect(q.Peek().Time()).To(Equal(VTimeInSec(5)))
		Expect(q.Len()).To(Equal(1))
	})
})
