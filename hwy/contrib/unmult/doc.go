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

// Package unmult recovers straight-alpha BGRA8 pixels from a premultiplied
// buffer, reconstructing a plausible alpha when the forward premultiply was
// lossy.
//
// Every pixel is transformed independently and in place. Two kernels compute
// the same bytes: BaseUnmult (scalar float32 arithmetic, the canonical
// definition) and VecUnmult (one pixel held in a hwy.Float32x4). A Dispatcher
// binds one of them exactly once from a capability probe, and Apply fans the
// bound kernel out over a worker pool.
//
// # Transform
//
// For a pixel (b, g, r, a), all in float32:
//
//  1. If a < 255, each colour channel becomes (c * a) / 256.
//  2. irate = max(r, g, b); if irate <= 0 the pixel becomes (0, 0, 0, 0).
//  3. t_c = c * (255 / irate) rescales the brightest channel to 255.
//  4. Alpha is re-derived from the first of b, g, r with t_c > 0 as
//     trunc(min((c * 255) / t_c, 255)); a zero alpha gives (0, 0, 0, 0).
//  5. Colour channels are rounded (halves away from zero) and clamped to 255.
//
// The divisor in step 1 is 256, not 255, and must stay that way: downstream
// consumers depend on the exact bytes.
//
// # Usage
//
//	pixels := unmult.AsPixels(bgra) // no copy
//	unmult.Unmult(pixels, width, height)
//
// Buffers are owned by the caller. Nothing is validated: width*height pixels
// must be readable and writable for the duration of the call.
package unmult
