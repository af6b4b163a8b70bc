// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

// Resize changes the storage size to capacity slots.
//
// The contents are first packed to the start of the current storage, in
// place, and the packed prefix is then handed to the allocator to be
// extended or truncated. Order and contents are preserved.
//
// Returns ErrInvalidSize if capacity < Len() or capacity < MinCapacity,
// and ErrReleased after Release; the ring is unchanged in both cases.
// Allocator errors are returned as-is; the ring then keeps its old
// capacity with the same logical contents.
func (r *Ring[T]) Resize(capacity int) error {
	if r.buf == nil {
		return ErrReleased
	}
	if capacity < r.cnt || capacity < MinCapacity {
		return ErrInvalidSize
	}

	r.repack()
	if capacity == len(r.buf) {
		return nil
	}

	buf, err := r.alloc.Realloc(r.buf, capacity)
	if err != nil {
		return err
	}
	r.buf = buf
	r.widx = r.cnt % capacity
	return nil
}

// ForcePushBack appends elem at the back, growing the ring by the
// configured factor (DefaultGrowth unless set) when it is full.
//
// Reports whether storage grew. If growth fails the error is returned,
// nothing is appended and the ring keeps its logical contents.
func (r *Ring[T]) ForcePushBack(elem T) (bool, error) {
	grew := false
	if r.IsFull() {
		if err := r.Resize(len(r.buf) * r.growth); err != nil {
			return false, err
		}
		grew = true
	}
	r.put(elem)
	return grew, nil
}

// repack moves the contents to slots [0, cnt) of the current storage.
func (r *Ring[T]) repack() {
	switch {
	case r.cnt == 0:
	case r.widx <= r.ridx:
		// ----w...r----
		if r.ridx != 0 {
			rotate(r.buf, r.ridx)
		}
	case r.ridx != 0:
		// ....r---w....
		copy(r.buf, r.buf[r.ridx:r.widx])
		clear(r.buf[r.cnt:r.widx])
	}
	r.ridx = 0
	r.widx = r.cnt % len(r.buf)
}

// rotate moves s[m:] in front of s[:m] in place with a single pass of
// swaps (Gries-Mills block swap). Requires 0 <= m < len(s).
func rotate[T any](s []T, m int) {
	a, n, b := 0, m, len(s)
	for a != n {
		s[a], s[n] = s[n], s[a]
		a++
		n++
		if n == b {
			n = m
		} else if a == m {
			m = n
		}
	}
}
