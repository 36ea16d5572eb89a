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

import "math"

// BaseUnmult is the scalar kernel and the canonical definition of the
// transform. It rewrites *p in place.
func BaseUnmult(p *Pixel) {
	b := float32(p.B)
	g := float32(p.G)
	r := float32(p.R)
	a := float32(p.A)

	if a < 255 {
		b = (b * a) / 256
		g = (g * a) / 256
		r = (r * a) / 256
	}

	irate := max(max(r, g), b)
	if !(irate > 0) {
		*p = Pixel{}
		return
	}

	rate := 255 / irate
	tb := b * rate
	tg := g * rate
	tr := r * rate

	// Blue, then green, then red: the first channel that survived the
	// rescale decides alpha.
	var alpha float32
	switch {
	case tb > 0:
		alpha = (b * 255) / tb
	case tg > 0:
		alpha = (g * 255) / tg
	case tr > 0:
		alpha = (r * 255) / tr
	default:
		*p = Pixel{}
		return
	}

	na := uint8(min(alpha, 255))
	if na == 0 {
		*p = Pixel{}
		return
	}

	p.B = roundChannel(tb)
	p.G = roundChannel(tg)
	p.R = roundChannel(tr)
	p.A = na
}

// roundChannel rounds a non-negative value to the nearest integer, halves
// away from zero, and clamps it to 255.
func roundChannel(x float32) uint8 {
	return uint8(min(float32(math.Round(float64(x))), 255))
}
