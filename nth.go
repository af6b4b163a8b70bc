// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer

// offset maps pos to a logical offset from the front. Negative positions
// count from the back.
func (r *Ring[T]) offset(pos int) (int, bool) {
	if pos < 0 {
		pos += r.cnt
	}
	return pos, pos >= 0 && pos < r.cnt
}

// PeekAt returns the element at offset pos without removing it.
//
// Offsets follow RemoveAt. Returns ErrWouldBlock if the ring is empty and
// ErrOutOfRange if pos does not address an element.
func (r *Ring[T]) PeekAt(pos int) (T, error) {
	var zero T
	if r.IsEmpty() {
		return zero, ErrWouldBlock
	}
	npos, ok := r.offset(pos)
	if !ok {
		return zero, ErrOutOfRange
	}
	return r.buf[(r.ridx+npos)%len(r.buf)], nil
}

// RemoveAt removes and returns the element at offset pos.
//
// Non-negative pos counts from the front (0 is PopFront); negative pos
// counts from the back (-1 is PopBack). Returns ErrWouldBlock if the ring is
// empty and ErrOutOfRange if pos does not address an element; the ring is
// unchanged in both cases.
//
// The gap is closed by shifting a neighbouring run by one slot, never the
// whole ring:
//
//	..r-D---w..   shorter side moves: front run right or back run left
//	-D--w...r--   wrapped, target before widx: back run moves left
//	--w...r-D--   wrapped, target at or after ridx: front run moves right
func (r *Ring[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if r.IsEmpty() {
		return zero, ErrWouldBlock
	}
	npos, ok := r.offset(pos)
	if !ok {
		return zero, ErrOutOfRange
	}

	size := len(r.buf)
	idx := (r.ridx + npos) % size
	elem := r.buf[idx]

	switch {
	case r.widx > r.ridx:
		if idx-r.ridx <= r.widx-1-idx {
			r.closeFront(idx)
		} else {
			r.closeBack(idx)
		}
	case idx < r.widx:
		r.closeBack(idx)
	default:
		r.closeFront(idx)
	}

	r.cnt--
	return elem, nil
}

// closeFront shifts [ridx, idx) right by one over idx and advances ridx.
// Requires ridx <= idx without wrapping in between.
func (r *Ring[T]) closeFront(idx int) {
	var zero T
	copy(r.buf[r.ridx+1:idx+1], r.buf[r.ridx:idx])
	r.buf[r.ridx] = zero
	r.ridx = nextIndex(len(r.buf), r.ridx)
}

// closeBack shifts [idx+1, widx) left by one over idx and retreats widx.
// Requires idx < widx without wrapping in between.
func (r *Ring[T]) closeBack(idx int) {
	var zero T
	copy(r.buf[idx:r.widx-1], r.buf[idx+1:r.widx])
	r.widx = prevIndex(len(r.buf), r.widx)
	r.buf[r.widx] = zero
}
