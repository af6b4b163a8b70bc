// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

const (
	// MinCapacity is the smallest storage size a ring accepts.
	MinCapacity = 2

	// DefaultGrowth is the factor ForcePushBack multiplies the capacity by
	// when the ring is full.
	DefaultGrowth = 2
)

// Options configures ring creation.
type Options struct {
	// Storage size in slots (exact, no rounding)
	capacity int

	// Capacity multiplier used by ForcePushBack
	growth int
}

// Builder creates rings with fluent configuration.
//
// Example:
//
//	// Ring of 64 slots that triples when force-pushed while full
//	r, err := ringer.Build[*Request](ringer.New(64).Growth(3))
//
//	// Ring drawing its storage from a shared budget
//	budget := ringer.NewBudget(1 << 20)
//	r, err := ringer.BuildWith(ringer.New(64), ringer.BudgetAllocator[*Request](budget))
//
//	// Goroutine-safe wrapper
//	l, err := ringer.BuildLocked[*Request](ringer.New(64))
type Builder struct {
	opts Options
}

// New creates a ring builder with the given capacity.
//
// Unlike power-of-two queues, the capacity is used exactly as given: Resize
// must be able to shrink a ring to precisely its element count. Capacity is
// validated by Build, which returns ErrInvalidSize below MinCapacity.
func New(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity, growth: DefaultGrowth}}
}

// Growth sets the factor ForcePushBack grows a full ring by.
// Build returns ErrInvalidSize when factor < 2.
func (b *Builder) Growth(factor int) *Builder {
	b.opts.growth = factor
	return b
}

// Build creates a Ring[T] backed by the Go heap.
func Build[T any](b *Builder) (*Ring[T], error) {
	return BuildWith[T](b, HeapAllocator[T]{})
}

// BuildWith creates a Ring[T] whose storage is obtained from a.
// A nil allocator selects HeapAllocator.
//
// Allocation failure is returned as-is; no ring is returned in that case.
func BuildWith[T any](b *Builder, a Allocator[T]) (*Ring[T], error) {
	if b.opts.capacity < MinCapacity || b.opts.growth < 2 {
		return nil, ErrInvalidSize
	}
	if a == nil {
		a = HeapAllocator[T]{}
	}
	buf, err := a.Alloc(b.opts.capacity)
	if err != nil {
		return nil, err
	}
	return &Ring[T]{buf: buf, growth: b.opts.growth, alloc: a}, nil
}

// BuildLocked creates a goroutine-safe Locked[T] around a heap-backed ring.
func BuildLocked[T any](b *Builder) (*Locked[T], error) {
	r, err := Build[T](b)
	if err != nil {
		return nil, err
	}
	return NewLocked(r), nil
}

// NewRing creates a heap-backed ring with the given capacity and the
// default doubling growth.
func NewRing[T any](capacity int) (*Ring[T], error) {
	return Build[T](New(capacity))
}
