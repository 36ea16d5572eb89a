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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

func (v Float32x4) load() archsimd.Float32x4 {
	return archsimd.LoadFloat32x4Slice(v[:])
}

func fromArch(x archsimd.Float32x4) Float32x4 {
	var out Float32x4
	x.StoreSlice(out[:])
	return out
}

// Mul returns v * o lane-wise (VMULPS).
func (v Float32x4) Mul(o Float32x4) Float32x4 {
	return fromArch(v.load().Mul(o.load()))
}

// Div returns v / o lane-wise (VDIVPS).
func (v Float32x4) Div(o Float32x4) Float32x4 {
	return fromArch(v.load().Div(o.load()))
}

// Max returns the lane-wise maximum (VMAXPS).
func (v Float32x4) Max(o Float32x4) Float32x4 {
	return fromArch(v.load().Max(o.load()))
}

// Min returns the lane-wise minimum (VMINPS).
func (v Float32x4) Min(o Float32x4) Float32x4 {
	return fromArch(v.load().Min(o.load()))
}
