// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
	"golang.org/x/sys/cpu"
)

// Locked is a goroutine-safe wrapper around a Ring.
//
// Every operation takes a test-and-test-and-set spin lock for the duration
// of the underlying Ring call. Critical sections never block. Len is
// lock-free: the element count is republished on every unlock.
//
// The wrapped ring must not be used directly while the Locked is in use.
// Compound operations go through Do.
//
// Memory: the wrapped ring plus three cache lines
type Locked[T any] struct {
	_     cpu.CacheLinePad
	state atomix.Uint64 // 0 unlocked, 1 locked
	_     cpu.CacheLinePad
	n     atomix.Int64 // Element count as of the last unlock
	_     cpu.CacheLinePad
	r     *Ring[T]
}

// NewLocked wraps r. Ownership of r passes to the returned Locked.
func NewLocked[T any](r *Ring[T]) *Locked[T] {
	l := &Locked[T]{r: r}
	l.n.Store(int64(r.Len()))
	return l
}

func (l *Locked[T]) lock() {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

func (l *Locked[T]) unlock() {
	l.n.Store(int64(l.r.cnt))
	l.state.StoreRelease(0)
}

// Do runs fn with exclusive access to the ring.
// fn must not retain r or call methods of l.
func (l *Locked[T]) Do(fn func(r *Ring[T])) {
	l.lock()
	defer l.unlock()
	fn(l.r)
}

// PushBack appends elem at the back. See [Ring.PushBack].
func (l *Locked[T]) PushBack(elem T) error {
	l.lock()
	defer l.unlock()
	return l.r.PushBack(elem)
}

// PopFront removes and returns the front element. See [Ring.PopFront].
func (l *Locked[T]) PopFront() (T, error) {
	l.lock()
	defer l.unlock()
	return l.r.PopFront()
}

// PushFront inserts elem before the front element. See [Ring.PushFront].
func (l *Locked[T]) PushFront(elem T) error {
	l.lock()
	defer l.unlock()
	return l.r.PushFront(elem)
}

// PopBack removes and returns the back element. See [Ring.PopBack].
func (l *Locked[T]) PopBack() (T, error) {
	l.lock()
	defer l.unlock()
	return l.r.PopBack()
}

func (l *Locked[T]) PeekFront() (T, error) {
	l.lock()
	defer l.unlock()
	return l.r.PeekFront()
}

func (l *Locked[T]) PeekBack() (T, error) {
	l.lock()
	defer l.unlock()
	return l.r.PeekBack()
}

// RemoveAt removes the element at offset pos. See [Ring.RemoveAt].
func (l *Locked[T]) RemoveAt(pos int) (T, error) {
	l.lock()
	defer l.unlock()
	return l.r.RemoveAt(pos)
}

func (l *Locked[T]) PeekAt(pos int) (T, error) {
	l.lock()
	defer l.unlock()
	return l.r.PeekAt(pos)
}

// Resize changes the storage size. See [Ring.Resize].
func (l *Locked[T]) Resize(capacity int) error {
	l.lock()
	defer l.unlock()
	return l.r.Resize(capacity)
}

// ForcePushBack appends elem, growing when full. See [Ring.ForcePushBack].
func (l *Locked[T]) ForcePushBack(elem T) (bool, error) {
	l.lock()
	defer l.unlock()
	return l.r.ForcePushBack(elem)
}

// Enqueue adds the pointed-to value at the back (multiple producers safe).
// Returns ErrWouldBlock if the ring is full.
func (l *Locked[T]) Enqueue(elem *T) error {
	return l.PushBack(*elem)
}

// Dequeue removes and returns the front element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (l *Locked[T]) Dequeue() (T, error) {
	return l.PopFront()
}

// Len returns the element count as of the most recent completed operation.
// It does not take the lock.
func (l *Locked[T]) Len() int {
	return int(l.n.Load())
}

// IsEmpty reports whether Len is zero.
func (l *Locked[T]) IsEmpty() bool {
	return l.Len() == 0
}

func (l *Locked[T]) IsFull() bool {
	l.lock()
	defer l.unlock()
	return l.r.IsFull()
}

// Cap returns the current storage size.
func (l *Locked[T]) Cap() int {
	l.lock()
	defer l.unlock()
	return l.r.Cap()
}

// Release returns the ring's storage to its allocator. See [Ring.Release].
func (l *Locked[T]) Release() {
	l.lock()
	defer l.unlock()
	l.r.Release()
}
