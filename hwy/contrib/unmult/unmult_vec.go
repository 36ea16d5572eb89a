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

import "github.com/ajroetker/go-unmult/hwy"

var (
	vec255  = hwy.BroadcastFloat32x4(255)
	vec256  = hwy.BroadcastFloat32x4(256)
	vecZero = hwy.ZeroFloat32x4()
)

// VecUnmult is the vectorized kernel. It holds the four channels of one
// pixel in a single hwy.Float32x4 (lanes b, g, r, a) and produces exactly
// the bytes BaseUnmult produces. It rewrites *p in place.
func VecUnmult(p *Pixel) {
	v := hwy.LoadFloat32x4Uint8(p.lanes())
	alpha := v.BroadcastLane(3)

	if v.GetLane(3) < 255 {
		v = v.Mul(alpha).Div(vec256)
	}
	// Zero the alpha lane so the horizontal max sees only colour. All lanes
	// are non-negative, so this equals max(r, g, b).
	v = v.InsertLane(3, 0)

	irate := v.ReduceMax()
	if !(irate.GetLane(0) > 0) {
		*p = Pixel{}
		return
	}

	t := v.Mul(vec255.Div(irate))
	ta := v.Mul(vec255).Div(t)

	// Lanes where t is 0 hold NaN in ta and compare false.
	lane := ta.Greater(vecZero).FirstTrue(3)
	if lane < 0 {
		*p = Pixel{}
		return
	}

	a := ta.Min(vec255).Trunc().GetLane(lane)
	if !(a > 0) {
		*p = Pixel{}
		return
	}

	p.setLanes(t.InsertLane(3, a).RoundPackUint8())
}
