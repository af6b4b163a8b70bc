// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

import "iter"

// Version is the ringer library version.
const Version = "0.0.1"

// Ring is a resizable double-ended ring buffer.
//
// Logical element i (counted from the front) lives in slot
// (ridx+i) mod Cap(). The occupied region is [ridx, widx) when it does not
// wrap, and [ridx, Cap()) followed by [0, widx) when it does. A non-empty
// ring wraps exactly when widx <= ridx.
//
// Ring stores values of T as given; when T is a pointer type the ring never
// owns the pointees. Ring is not safe for concurrent use. Use [Locked] to
// share one between goroutines.
//
// Memory: Cap() slots of T, obtained from the configured Allocator
type Ring[T any] struct {
	buf    []T
	ridx   int // Front slot
	widx   int // Slot after the back
	cnt    int
	growth int
	alloc  Allocator[T]
}

// nextIndex and prevIndex are the only places wrap-around is computed for
// cursor movement.
func nextIndex(size, idx int) int {
	return (idx + 1) % size
}

func prevIndex(size, idx int) int {
	return (idx - 1 + size) % size
}

// PushBack appends elem at the back.
// Returns ErrWouldBlock if the ring is full.
func (r *Ring[T]) PushBack(elem T) error {
	if r.IsFull() {
		return ErrWouldBlock
	}
	r.put(elem)
	return nil
}

func (r *Ring[T]) put(elem T) {
	r.buf[r.widx] = elem
	r.widx = nextIndex(len(r.buf), r.widx)
	r.cnt++
}

// PopFront removes and returns the front element.
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (r *Ring[T]) PopFront() (T, error) {
	var zero T
	if r.IsEmpty() {
		return zero, ErrWouldBlock
	}
	elem := r.buf[r.ridx]
	r.buf[r.ridx] = zero
	r.ridx = nextIndex(len(r.buf), r.ridx)
	r.cnt--
	return elem, nil
}

// PushFront inserts elem before the front element.
// Returns ErrWouldBlock if the ring is full.
func (r *Ring[T]) PushFront(elem T) error {
	if r.IsFull() {
		return ErrWouldBlock
	}
	r.ridx = prevIndex(len(r.buf), r.ridx)
	r.buf[r.ridx] = elem
	r.cnt++
	return nil
}

// PopBack removes and returns the back element.
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (r *Ring[T]) PopBack() (T, error) {
	var zero T
	if r.IsEmpty() {
		return zero, ErrWouldBlock
	}
	r.widx = prevIndex(len(r.buf), r.widx)
	elem := r.buf[r.widx]
	r.buf[r.widx] = zero
	r.cnt--
	return elem, nil
}

// PeekFront returns the front element without removing it.
func (r *Ring[T]) PeekFront() (T, error) {
	if r.IsEmpty() {
		var zero T
		return zero, ErrWouldBlock
	}
	return r.buf[r.ridx], nil
}

// PeekBack returns the back element without removing it.
func (r *Ring[T]) PeekBack() (T, error) {
	if r.IsEmpty() {
		var zero T
		return zero, ErrWouldBlock
	}
	return r.buf[prevIndex(len(r.buf), r.widx)], nil
}

// Enqueue adds the pointed-to value at the back. Same as PushBack.
func (r *Ring[T]) Enqueue(elem *T) error {
	return r.PushBack(*elem)
}

// Dequeue removes and returns the front element. Same as PopFront.
func (r *Ring[T]) Dequeue() (T, error) {
	return r.PopFront()
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int {
	return r.cnt
}

// Cap returns the storage size in slots.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool {
	return r.cnt == 0
}

// IsFull reports whether every slot is occupied.
// A released ring is both empty and full.
func (r *Ring[T]) IsFull() bool {
	return r.cnt >= len(r.buf)
}

// All returns an iterator over (offset, element) pairs from front to back.
// The ring must not be modified during iteration.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := r.ridx
		for i := range r.cnt {
			if !yield(i, r.buf[idx]) {
				return
			}
			idx = nextIndex(len(r.buf), idx)
		}
	}
}

// Release returns the storage to the allocator.
//
// Elements still in the ring are dropped without being touched; draining
// or otherwise disposing of them is the caller's responsibility. After
// Release the ring is empty with zero capacity: pushes return
// ErrWouldBlock and Resize/ForcePushBack return ErrReleased.
// Release is idempotent.
func (r *Ring[T]) Release() {
	if r.buf == nil {
		return
	}
	r.alloc.Free(r.buf)
	r.buf = nil
	r.ridx, r.widx, r.cnt = 0, 0, 0
}
