package unmult

import (
	"math/rand/v2"
	"testing"
)

func checkEquivalent(t *testing.T, in Pixel) {
	t.Helper()
	s, v := in, in
	BaseUnmult(&s)
	VecUnmult(&v)
	if s != v {
		t.Fatalf("kernels disagree on %v: scalar %v, vector %v", in, s, v)
	}
}

func TestKernelEquivalenceRandom(t *testing.T) {
	n := 1 << 20
	if testing.Short() {
		n = 1 << 14
	}
	rng := rand.New(rand.NewPCG(0x5eed, 0xbeef))
	for range n {
		checkEquivalent(t, UnpackBGRA(rng.Uint32()))
	}
}

func TestKernelEquivalenceGrid(t *testing.T) {
	alphas := []int{0, 1, 2, 3, 64, 127, 128, 129, 200, 254, 255}
	for _, a := range alphas {
		for b := 0; b < 256; b += 5 {
			for g := 0; g < 256; g += 5 {
				for r := 0; r < 256; r += 5 {
					checkEquivalent(t, Pixel{uint8(b), uint8(g), uint8(r), uint8(a)})
				}
			}
		}
	}
}

func TestKernelEquivalenceSingleChannel(t *testing.T) {
	for a := range 256 {
		for c := range 256 {
			checkEquivalent(t, Pixel{B: uint8(c), A: uint8(a)})
			checkEquivalent(t, Pixel{G: uint8(c), A: uint8(a)})
			checkEquivalent(t, Pixel{R: uint8(c), A: uint8(a)})
			checkEquivalent(t, Pixel{B: uint8(c), G: uint8(c), R: uint8(c), A: uint8(a)})
		}
	}
}
