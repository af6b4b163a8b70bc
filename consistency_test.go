// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringer_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/ringer"
	"github.com/eapache/queue"
)

// =============================================================================
// Differential Tests
// =============================================================================

// TestFIFOConsistency drives a Ring and an eapache/queue reference with the
// same random sequence of back pushes, front pops, forced pushes and
// resizes, and checks they agree after every step.
func TestFIFOConsistency(t *testing.T) {
	for seed := range uint64(20) {
		rng := rand.New(rand.NewPCG(seed, 1234))
		capacity := ringer.MinCapacity + rng.IntN(7)
		r := newRing(t, capacity)
		ref := queue.New()

		for step := range 2000 {
			switch op := rng.IntN(10); {
			case op < 4:
				v := step
				err := r.PushBack(v)
				if ref.Length() < r.Cap() {
					if err != nil {
						t.Fatalf("seed %d step %d PushBack: %v", seed, step, err)
					}
					ref.Add(v)
				} else if !errors.Is(err, ringer.ErrWouldBlock) {
					t.Fatalf("seed %d step %d PushBack on full: got %v, want ErrWouldBlock", seed, step, err)
				}

			case op < 7:
				v, err := r.PopFront()
				if ref.Length() == 0 {
					if !errors.Is(err, ringer.ErrWouldBlock) {
						t.Fatalf("seed %d step %d PopFront on empty: got %v", seed, step, err)
					}
					continue
				}
				want := ref.Remove().(int)
				if err != nil || v != want {
					t.Fatalf("seed %d step %d PopFront: got (%d, %v), want (%d, nil)", seed, step, v, err, want)
				}

			case op < 9:
				oldCap := r.Cap()
				grew, err := r.ForcePushBack(step)
				if err != nil {
					t.Fatalf("seed %d step %d ForcePushBack: %v", seed, step, err)
				}
				if wantGrew := ref.Length() == oldCap; grew != wantGrew {
					t.Fatalf("seed %d step %d ForcePushBack: grew=%v, want %v", seed, step, grew, wantGrew)
				}
				ref.Add(step)

			default:
				n := max(ref.Length(), ringer.MinCapacity) + rng.IntN(4)
				if err := r.Resize(n); err != nil {
					t.Fatalf("seed %d step %d Resize(%d): %v", seed, step, n, err)
				}
			}

			if r.Len() != ref.Length() {
				t.Fatalf("seed %d step %d Len: got %d, want %d", seed, step, r.Len(), ref.Length())
			}
			for i, v := range r.All() {
				if want := ref.Get(i).(int); v != want {
					t.Fatalf("seed %d step %d element %d: got %d, want %d", seed, step, i, v, want)
				}
			}
			if ref.Length() > 0 {
				if v, _ := r.PeekFront(); v != ref.Peek().(int) {
					t.Fatalf("seed %d step %d PeekFront: got %d, want %d", seed, step, v, ref.Peek())
				}
			}
		}
	}
}

// TestDequeConsistency checks every Deque operation against a slice model
// over random sequences on small rings, where wrap-around is frequent.
func TestDequeConsistency(t *testing.T) {
	for seed := range uint64(30) {
		rng := rand.New(rand.NewPCG(seed, 5678))
		capacity := ringer.MinCapacity + rng.IntN(5)
		r := newRing(t, capacity)
		var model []int

		for step := range 1500 {
			full := len(model) == r.Cap()
			switch rng.IntN(8) {
			case 0:
				if err := r.PushBack(step); (err == nil) == full {
					t.Fatalf("seed %d step %d PushBack: err=%v full=%v", seed, step, err, full)
				}
				if !full {
					model = append(model, step)
				}
			case 1:
				if err := r.PushFront(step); (err == nil) == full {
					t.Fatalf("seed %d step %d PushFront: err=%v full=%v", seed, step, err, full)
				}
				if !full {
					model = slices.Insert(model, 0, step)
				}
			case 2:
				v, err := r.PopFront()
				if len(model) > 0 {
					if err != nil || v != model[0] {
						t.Fatalf("seed %d step %d PopFront: got (%d, %v), want %d", seed, step, v, err, model[0])
					}
					model = model[1:]
				}
			case 3:
				v, err := r.PopBack()
				if len(model) > 0 {
					if err != nil || v != model[len(model)-1] {
						t.Fatalf("seed %d step %d PopBack: got (%d, %v), want %d", seed, step, v, err, model[len(model)-1])
					}
					model = model[:len(model)-1]
				}
			case 4, 5:
				if len(model) == 0 {
					if _, err := r.RemoveAt(0); !errors.Is(err, ringer.ErrWouldBlock) {
						t.Fatalf("seed %d step %d RemoveAt on empty: got %v", seed, step, err)
					}
					continue
				}
				pos := rng.IntN(2*len(model)) - len(model)
				npos := pos
				if npos < 0 {
					npos += len(model)
				}
				v, err := r.RemoveAt(pos)
				if err != nil || v != model[npos] {
					t.Fatalf("seed %d step %d RemoveAt(%d): got (%d, %v), want %d", seed, step, pos, v, err, model[npos])
				}
				model = slices.Delete(model, npos, npos+1)
			case 6:
				r.ForcePushBack(step)
				model = append(model, step)
			default:
				n := max(len(model), ringer.MinCapacity) + rng.IntN(3)
				if err := r.Resize(n); err != nil {
					t.Fatalf("seed %d step %d Resize(%d): %v", seed, step, n, err)
				}
			}

			if got := contents(r); !slices.Equal(got, model) {
				t.Fatalf("seed %d step %d contents: got %v, want %v", seed, step, got, model)
			}
		}
	}
}
