// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringer

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent Locked tests: the spin lock is built on
// atomix orderings the race detector cannot observe, so protected ring
// accesses are reported as false positives.
const RaceEnabled = true
