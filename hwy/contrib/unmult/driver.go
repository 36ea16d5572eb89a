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

package unmult

import "github.com/ajroetker/go-unmult/hwy/contrib/workerpool"

// MinParallelPixels is the buffer size below which Apply stays on the
// calling goroutine.
const MinParallelPixels = 1 << 14

// DefaultBatchPixels is the batch size used by ApplyBatched when batch <= 0.
const DefaultBatchPixels = 1 << 12

// Apply runs kernel once for every index in [0, width*height), splitting the
// range into one contiguous chunk per worker. Pixels past width*height are
// never touched. It returns after all pixels are done.
func Apply(pool *workerpool.Pool, kernel Kernel, pixels []Pixel, width, height int) {
	n := width * height
	if n <= 0 {
		return
	}
	px := pixels[:n:n]
	if pool == nil || n < MinParallelPixels {
		applyRange(kernel, px)
		return
	}
	pool.ParallelFor(n, func(start, end int) {
		applyRange(kernel, px[start:end])
	})
}

// ApplyBatched is Apply with dynamic scheduling: workers pull batches of
// batch pixels from a shared cursor until the buffer is exhausted.
func ApplyBatched(pool *workerpool.Pool, kernel Kernel, pixels []Pixel, width, height, batch int) {
	n := width * height
	if n <= 0 {
		return
	}
	if batch <= 0 {
		batch = DefaultBatchPixels
	}
	px := pixels[:n:n]
	if pool == nil || n < MinParallelPixels {
		applyRange(kernel, px)
		return
	}
	pool.ParallelForBatched(n, batch, func(start, end int) {
		applyRange(kernel, px[start:end])
	})
}

func applyRange(kernel Kernel, px []Pixel) {
	for i := range px {
		kernel(&px[i])
	}
}
