// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

// Queue is the combined producer-consumer interface for a FIFO queue.
//
// Queue provides non-blocking Enqueue and Dequeue operations. Both operations
// return ErrWouldBlock when they cannot proceed (ring full or empty).
//
// Example:
//
//	r, _ := ringer.NewRing[int](16)
//	var q ringer.Queue[int] = r
//
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Handle full ring
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the interface for enqueueing elements at the back.
type Producer[T any] interface {
	// Enqueue adds an element at the back of the queue (non-blocking).
	// The pointed-to value is copied into the ring.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements from the front.
type Consumer[T any] interface {
	// Dequeue removes and returns the front element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	// The vacated slot is cleared to allow garbage collection of
	// referenced objects.
	Dequeue() (T, error)
}

// Deque is the full double-ended interface implemented by [Ring] and
// [Locked].
//
// Front and back operations deviate from plain FIFO order on purpose:
// PushFront jumps the queue and PopBack takes the most recent element.
// Only ForcePushBack grows storage implicitly; every other insert fails
// with ErrWouldBlock on a full ring.
type Deque[T any] interface {
	Queue[T]

	PushBack(elem T) error
	PopFront() (T, error)
	PushFront(elem T) error
	PopBack() (T, error)
	PeekFront() (T, error)
	PeekBack() (T, error)

	// RemoveAt removes the element at offset pos from the front.
	// Negative offsets count from the back (-1 is the last element).
	RemoveAt(pos int) (T, error)
	// PeekAt returns the element at offset pos without removing it.
	PeekAt(pos int) (T, error)

	// Resize changes the storage size, preserving order.
	Resize(capacity int) error
	// ForcePushBack appends, growing the ring when full. Reports whether
	// storage grew.
	ForcePushBack(elem T) (bool, error)

	Len() int
	IsEmpty() bool
	IsFull() bool
}

var (
	_ Deque[int] = (*Ring[int])(nil)
	_ Deque[int] = (*Locked[int])(nil)
)
