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

import "unsafe"

// Pixel is one BGRA8 pixel. The field order is the memory order: blue at the
// lowest address, alpha at the highest. Read as a little-endian uint32 it is
// 0xAARRGGBB.
type Pixel struct {
	B, G, R, A uint8
}

// PixelSize is the size of a Pixel in bytes.
const PixelSize = int(unsafe.Sizeof(Pixel{}))

// AsPixels reinterprets a tightly packed BGRA8 byte buffer as pixels without
// copying. The result aliases buf. len(buf) must be a multiple of PixelSize.
func AsPixels(buf []byte) []Pixel {
	if len(buf)%PixelSize != 0 {
		panic("unmult: buffer length is not a multiple of 4")
	}
	if len(buf) == 0 {
		return nil
	}
	return unsafe.Slice((*Pixel)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)/PixelSize)
}

// AsBytes is the inverse of AsPixels.
func AsBytes(pixels []Pixel) []byte {
	if len(pixels) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(pixels))), len(pixels)*PixelSize)
}

// PackBGRA returns the pixel as a little-endian 32-bit word (0xAARRGGBB).
func PackBGRA(p Pixel) uint32 {
	return uint32(p.B) | uint32(p.G)<<8 | uint32(p.R)<<16 | uint32(p.A)<<24
}

// UnpackBGRA is the inverse of PackBGRA.
func UnpackBGRA(v uint32) Pixel {
	return Pixel{B: uint8(v), G: uint8(v >> 8), R: uint8(v >> 16), A: uint8(v >> 24)}
}

// lanes returns the pixel bytes in memory order.
func (p *Pixel) lanes() [4]uint8 {
	return [4]uint8{p.B, p.G, p.R, p.A}
}

func (p *Pixel) setLanes(l [4]uint8) {
	p.B, p.G, p.R, p.A = l[0], l[1], l[2], l[3]
}
