// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed on the current
// contents of the ring.
//
// For PushBack, PushFront and Enqueue: the ring is full
// For PopFront, PopBack, Peek*, RemoveAt and Dequeue: the ring is empty
//
// ErrWouldBlock is a control flow signal, not a failure. The ring is left
// unchanged. Callers that want the ring to grow instead use ForcePushBack.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrOutOfRange is returned by RemoveAt and PeekAt when the offset does
	// not address an element of a non-empty ring.
	ErrOutOfRange = errors.New("ringer: position out of range")

	// ErrInvalidSize is returned when a capacity is below MinCapacity, below
	// the current element count, or a growth factor is below 2.
	ErrInvalidSize = errors.New("ringer: invalid size")

	// ErrNoMemory is returned when an Allocator cannot provide storage.
	ErrNoMemory = errors.New("ringer: out of memory")

	// ErrReleased is returned by operations that need storage after Release.
	ErrReleased = errors.New("ringer: ring released")
)

// IsWouldBlock reports whether err indicates the ring was full or empty.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
