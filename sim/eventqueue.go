package sim

import (
	"container/heap"
	"sync"
)

// An EventQueue holds events in the order they should be triggered.
type EventQueue interface {
	Push(evt Event)
	Pop() Event
	Peek() Event
	Len() int
}

// EventQueueImpl is a thread-safe, heap-based EventQueue.
type EventQueueImpl struct {
	sync.Mutex
	events eventHeap
}

// NewEventQueue creates a new EventQueueImpl.
func NewEventQueue() *EventQueueImpl {
	q := new(EventQueueImpl)

	q.events = make(eventHeap, 0)
	heap.Init(&q.events)

	return q
}

// Push adds an event to the queue.
func (q *EventQueueImpl) Push(evt Event) {
	q.Lock()
	heap.Push(&q.events, evt)
	q.Unlock()
}

// Pop removes and returns the earliest event in the queue.
func (q *EventQueueImpl) Pop() Event {
	q.Lock()
	e := heap.Pop(&q.events).(Event)
	q.Unlock()

	return e
}

// Peek returns the earliest event without removing it.
func (q *EventQueueImpl) Peek() Event {
	q.Lock()
	e := q.events[0]
	q.Unlock()

	return e
}

// Len returns the number of events in the queue.
func (q *EventQueueImpl) Len() int {
	q.Lock()
	l := len(q.events)
	q.Unlock()

	return l
}

type eventHeap []Event

func (h eventHeap) Len() int {
	return len(h)
}

func (h eventHeap) Less(i, j int) bool {
	return h[i].Time() < h[j].Time()
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	evt := old[n-1]
	*h = old[:n-1]

	return evt
}
