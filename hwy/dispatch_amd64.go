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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd the Float32x4 arithmetic is lowered by the Go
// compiler to scalar SSE instructions, but the vector path is still gated on
// AVX so both build modes select the same kernel on the same machine.

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = DispatchAVX512
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
	case cpu.X86.HasAVX:
		currentLevel = DispatchAVX
	default:
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
	}
	// CPUID leaf 1, ECX bit 28.
	hasVector4 = cpu.X86.HasAVX
}
