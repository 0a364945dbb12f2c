package queue

// Queue is a growable circular FIFO. Enqueue appends at the tail and Dequeue
// removes from the head, both amortized O(1). The queue is single-owner and
// does no locking; construct it with New.
type Queue[T any] struct {
	ring []T
	head int
	size int
}

// New creates a queue whose ring holds capacity elements before the first
// grow. A negative capacity is treated as zero.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{ring: make([]T, capacity)}
}

// Enqueue appends v at the tail, doubling the ring when it is full.
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.ring) {
		q.grow()
	}
	q.ring[(q.head+q.size)%len(q.ring)] = v
	q.size++
}

// Dequeue removes and returns the head element; the second return is false if
// the queue is empty. The vacated slot is cleared so the ring does not keep
// the element alive after ownership leaves the queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.ring[q.head]
	q.ring[q.head] = zero
	q.head = (q.head + 1) % len(q.ring)
	q.size--
	return v, true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.size
}

// Cap returns the current ring capacity.
func (q *Queue[T]) Cap() int {
	return len(q.ring)
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// grow doubles the ring and unwraps the live window to the front of the new
// ring, so head is back at index zero.
func (q *Queue[T]) grow() {
	newCap := 2 * len(q.ring)
	if newCap == 0 {
		newCap = 1
	}
	ring := make([]T, newCap)
	n := copy(ring, q.ring[q.head:])
	copy(ring[n:], q.ring[:q.head])
	q.ring = ring
	q.head = 0
}
