// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

import "code.hybscloud.com/atomix"

// Allocator provides backing storage for a Ring.
//
// A ring calls Alloc once when built, Realloc on every Resize that changes
// the size, and Free on Release. Implementations must return slices of
// exactly the requested length. On error the input slice must be left
// untouched so the ring stays consistent.
type Allocator[T any] interface {
	// Alloc returns storage of n zeroed slots.
	Alloc(n int) ([]T, error)
	// Realloc returns storage of n slots whose first min(n, len(s)) slots
	// hold s's contents. Slots beyond that are zeroed.
	Realloc(s []T, n int) ([]T, error)
	// Free releases storage obtained from Alloc or Realloc.
	Free(s []T)
}

// HeapAllocator allocates from the Go heap. It never fails.
type HeapAllocator[T any] struct{}

// Alloc returns make([]T, n).
func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	return make([]T, n), nil
}

// Realloc copies s into fresh storage of n slots so that shrinking gives
// memory back to the garbage collector.
func (HeapAllocator[T]) Realloc(s []T, n int) ([]T, error) {
	if n == len(s) {
		return s, nil
	}
	ns := make([]T, n)
	copy(ns, s)
	return ns, nil
}

// Free drops the reference to s. The garbage collector reclaims it.
func (HeapAllocator[T]) Free([]T) {}

// Budget is a slot budget shared by any number of rings.
//
// Rings built with [BudgetAllocator] reserve slots from the budget when
// they allocate or grow and return them on shrink or Release. Budget is
// safe for concurrent use, so rings owned by different goroutines can draw
// from one budget. Reservations that race near the limit may be refused
// even though a later sequential attempt would fit.
type Budget struct {
	used  atomix.Int64
	limit int64
}

// NewBudget creates a budget of limit slots.
func NewBudget(limit int64) *Budget {
	return &Budget{limit: limit}
}

// Limit returns the maximum number of slots.
func (b *Budget) Limit() int64 {
	return b.limit
}

// Used returns the number of slots currently reserved.
func (b *Budget) Used() int64 {
	return b.used.Load()
}

func (b *Budget) reserve(n int64) bool {
	if b.used.AddAcqRel(n) > b.limit {
		b.used.AddAcqRel(-n)
		return false
	}
	return true
}

func (b *Budget) release(n int64) {
	b.used.AddAcqRel(-n)
}

type budgetAllocator[T any] struct {
	budget *Budget
	heap   HeapAllocator[T]
}

// BudgetAllocator returns an Allocator that draws slots from b.
// Requests that would exceed the budget fail with ErrNoMemory.
func BudgetAllocator[T any](b *Budget) Allocator[T] {
	return budgetAllocator[T]{budget: b}
}

func (a budgetAllocator[T]) Alloc(n int) ([]T, error) {
	if !a.budget.reserve(int64(n)) {
		return nil, ErrNoMemory
	}
	return a.heap.Alloc(n)
}

func (a budgetAllocator[T]) Realloc(s []T, n int) ([]T, error) {
	delta := int64(n - len(s))
	if delta > 0 && !a.budget.reserve(delta) {
		return nil, ErrNoMemory
	}
	ns, _ := a.heap.Realloc(s, n)
	if delta < 0 {
		a.budget.release(-delta)
	}
	return ns, nil
}

func (a budgetAllocator[T]) Free(s []T) {
	a.budget.release(int64(len(s)))
}
