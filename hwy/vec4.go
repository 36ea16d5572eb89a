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

package hwy

import "math"

// BroadcastFloat32x4 returns a vector with every lane set to v.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// ZeroFloat32x4 returns the all-zero vector.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// LoadFloat32x4Uint8 widens four unsigned bytes to float32 lanes
// (the punpcklbw/punpcklwd/cvtdq2ps sequence). The conversion is exact.
func LoadFloat32x4Uint8(b [Lanes4]uint8) Float32x4 {
	return Float32x4{float32(b[0]), float32(b[1]), float32(b[2]), float32(b[3])}
}

// GetLane returns lane i.
func (v Float32x4) GetLane(i int) float32 {
	return v[i&3]
}

// InsertLane returns a copy of v with lane i replaced by x.
func (v Float32x4) InsertLane(i int, x float32) Float32x4 {
	v[i&3] = x
	return v
}

// BroadcastLane returns a vector with every lane set to lane i of v.
func (v Float32x4) BroadcastLane(i int) Float32x4 {
	return BroadcastFloat32x4(v[i&3])
}

// Permute returns {v[i0], v[i1], v[i2], v[i3]}. Indices are taken modulo 4,
// as with vpermilps immediates.
func (v Float32x4) Permute(i0, i1, i2, i3 int) Float32x4 {
	return Float32x4{v[i0&3], v[i1&3], v[i2&3], v[i3&3]}
}

// ReduceMax returns the horizontal maximum of all four lanes broadcast to
// every lane. It uses the same two-step permute/max tree as the hardware
// sequence so results agree for all non-NaN inputs.
func (v Float32x4) ReduceMax() Float32x4 {
	m := v.Max(v.Permute(2, 3, 0, 0))
	m = m.Max(m.Permute(1, 0, 0, 0))
	return m.BroadcastLane(0)
}

// Greater returns the mask of lanes where v > o. NaN lanes compare false.
func (v Float32x4) Greater(o Float32x4) Mask4 {
	var m Mask4
	for i := range Lanes4 {
		if v[i] > o[i] {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Less returns the mask of lanes where v < o. NaN lanes compare false.
func (v Float32x4) Less(o Float32x4) Mask4 {
	return o.Greater(v)
}

// Trunc rounds each lane toward zero.
func (v Float32x4) Trunc() Float32x4 {
	for i := range Lanes4 {
		v[i] = float32(math.Trunc(float64(v[i])))
	}
	return v
}

// Round rounds each lane to the nearest integer, halves away from zero.
// Widening to float64 is exact, so this matches roundf.
func (v Float32x4) Round() Float32x4 {
	for i := range Lanes4 {
		v[i] = float32(math.Round(float64(v[i])))
	}
	return v
}

// RoundPackUint8 rounds every lane (see Round) and packs it to an unsigned
// byte with saturation to [0, 255], like cvtps2dq followed by packusdw and
// packuswb. NaN lanes pack to 0.
func (v Float32x4) RoundPackUint8() [Lanes4]uint8 {
	var out [Lanes4]uint8
	r := v.Round()
	for i := range Lanes4 {
		out[i] = saturateUint8(r[i])
	}
	return out
}

func saturateUint8(x float32) uint8 {
	switch {
	case x >= 255:
		return 255
	case x > 0:
		return uint8(x)
	default:
		// Negative values and NaN.
		return 0
	}
}
