// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringer provides a resizable double-ended ring buffer.
//
// A [Ring] keeps its elements in a fixed array addressed by a read cursor
// and a write cursor that wrap around. Pushes and pops at either end are
// O(1), any element can be spliced out by position, and the storage can be
// grown or shrunk without losing order. The ring is a building block for
// schedulers, I/O pipelines and bounded work queues.
//
// # Quick Start
//
// Direct constructor:
//
//	r, err := ringer.NewRing[*Task](64)
//
// Builder API:
//
//	r, err := ringer.Build[*Task](ringer.New(64).Growth(4))
//
// # Basic Usage
//
//	r, _ := ringer.NewRing[int](4)
//
//	// Append (non-blocking, fails when full)
//	if err := r.PushBack(42); ringer.IsWouldBlock(err) {
//	    // Ring is full - handle backpressure or use ForcePushBack
//	}
//
//	// Take from the front (non-blocking, fails when empty)
//	v, err := r.PopFront()
//	if ringer.IsWouldBlock(err) {
//	    // Ring is empty
//	}
//
// # Double-Ended Operations
//
// PushFront and PopBack deviate from FIFO order; together with PushBack and
// PopFront they make Ring a deque. PeekFront and PeekBack read without
// removing.
//
//	r.PushBack(1)
//	r.PushBack(2)
//	r.PushFront(0)       // 0 1 2
//	v, _ := r.PopBack()  // 2
//
// # Positional Removal
//
// RemoveAt splices any element out by offset from the front. Negative
// offsets count from the back:
//
//	// Ring holds a b c d
//	v, _ := r.RemoveAt(2)   // c, ring holds a b d
//	v, _ = r.RemoveAt(-1)   // d, same as PopBack
//	v, _ = r.RemoveAt(0)    // a, same as PopFront
//
// Only the shorter neighbouring run of elements is moved to close the gap.
//
// # Capacity and Resizing
//
// Capacity is used exactly as given and must be at least [MinCapacity].
// Every insert except ForcePushBack fails with [ErrWouldBlock] on a full
// ring; ForcePushBack multiplies the capacity by the growth factor
// ([DefaultGrowth] unless configured) and then appends:
//
//	grew, err := r.ForcePushBack(v)
//
// Resize sets the capacity explicitly. It packs the contents to the start
// of the storage by an in-place rotation, with no temporary buffer, before
// asking the allocator to extend or truncate it. Resize fails with
// [ErrInvalidSize] when the new capacity is below Len or MinCapacity.
//
// # Allocation
//
// Storage comes from an [Allocator]. [HeapAllocator] uses the Go heap. For
// memory-constrained embedding, [BudgetAllocator] draws from a [Budget]
// shared by many rings and fails with [ErrNoMemory] once it is exhausted:
//
//	budget := ringer.NewBudget(4096)
//	r, err := ringer.BuildWith(ringer.New(64), ringer.BudgetAllocator[*Task](budget))
//
// Allocation failures are returned from Build, Resize and ForcePushBack;
// the ring is never left partially constructed or inconsistent.
//
// # Ownership
//
// The ring owns its storage array only. Elements are stored as given; when
// they are pointers the pointees remain the caller's responsibility.
// Release returns the storage to the allocator without touching elements.
// Popped and removed slots are cleared so the ring does not keep garbage
// reachable.
//
// # Error Handling
//
// Every failure is a returned error and leaves the ring unchanged.
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency and is a control flow signal, not a failure:
//
//	ringer.IsWouldBlock(err)  // true if ring full/empty
//	ringer.IsSemantic(err)    // true if control flow signal
//	ringer.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Thread Safety
//
// Ring is single-owner: it has no internal locking and must not be used
// from multiple goroutines at once. [Locked] wraps a Ring with a spin lock
// for shared use, and both satisfy [Deque] and [Queue]:
//
//	l, _ := ringer.BuildLocked[Job](ringer.New(1024))
//
//	// Producers
//	backoff := iox.Backoff{}
//	for l.Enqueue(&job) != nil {
//	    backoff.Wait()
//	}
//
//	// Consumers
//	job, err := l.Dequeue()
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, [code.hybscloud.com/spin] for CPU pause instructions and
// [golang.org/x/sys/cpu] for cache line padding.
package ringer
