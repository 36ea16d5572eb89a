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

//go:build !(amd64 && goexperiment.simd)

package hwy

// Lane-wise arithmetic in plain Go. Every operation is a single IEEE-754
// float32 operation per lane, so the results are bit-identical to the
// archsimd build.

// Mul returns v * o lane-wise.
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	return Float32x4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

// Div returns v / o lane-wise.
func (v Float32x4) Div(o Float32x4) Float32x4 {
	return Float32x4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

// Max returns the lane-wise maximum. When lanes compare unordered the lane
// from o is returned, matching maxps.
func (v Float32x4) Max(o Float32x4) Float32x4 {
	for i := range Lanes4 {
		if !(v[i] > o[i]) {
			v[i] = o[i]
		}
	}
	return v
}

// Min returns the lane-wise minimum. When lanes compare unordered the lane
// from o is returned, matching minps.
func (v Float32x4) Min(o Float32x4) Float32x4 {
	for i := range Lanes4 {
		if !(v[i] < o[i]) {
			v[i] = o[i]
		}
	}
	return v
}
