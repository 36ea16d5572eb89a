// Copyright 2025 go-unmult Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hwy provides the small fixed-width vector layer used by the
// vectorized pixel kernels, together with the one-time CPU capability probe
// that decides whether those kernels are selected.
//
// The vector type is deliberately narrow: a Float32x4 holds the four
// channels of a single pixel, and the operation set (multiply, divide,
// min/max, lane permute/insert/broadcast, compare, round, saturating pack)
// mirrors what 128-bit SSE/AVX and NEON registers offer. Builds with
// GOEXPERIMENT=simd on amd64 lower the arithmetic to simd/archsimd; all
// other builds use plain Go lane loops with identical IEEE-754 results.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-unmult/hwy"
//
//	v := hwy.LoadFloat32x4Uint8([4]uint8{10, 20, 30, 255})
//	m := v.InsertLane(3, 0).ReduceMax()  // broadcast max of lanes 0..2
//	out := v.Div(m).Mul(hwy.BroadcastFloat32x4(255)).RoundPackUint8()
package hwy

// Lanes4 is the lane count of every vector in this package.
const Lanes4 = 4

// Float32x4 is a 128-bit vector of four float32 lanes.
//
// Lane i of a pixel vector holds byte i of the pixel, so for BGRA8 the
// lanes are blue, green, red, alpha.
type Float32x4 [Lanes4]float32

// Mask4 is the result of a lane-wise comparison. Bit i is set when lane i
// compared true, matching the movmskps layout.
type Mask4 uint8

// AllTrue returns true if all four lanes are active.
func (m Mask4) AllTrue() bool {
	return m&0xF == 0xF
}

// AnyTrue returns true if at least one lane is active.
func (m Mask4) AnyTrue() bool {
	return m&0xF != 0
}

// GetBit returns whether lane i is active.
func (m Mask4) GetBit(i int) bool {
	if i < 0 || i >= Lanes4 {
		return false
	}
	return m&(1<<uint(i)) != 0
}

// FirstTrue returns the lowest active lane among the first n lanes, or -1
// when none of them is active. Lower lanes always win.
func (m Mask4) FirstTrue(n int) int {
	for i := 0; i < n && i < Lanes4; i++ {
		if m&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}
