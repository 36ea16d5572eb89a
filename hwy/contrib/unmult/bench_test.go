package unmult

import (
	"testing"

	"github.com/ajroetker/go-unmult/hwy/contrib/workerpool"
)

func benchmarkKernel(b *testing.B, k Kernel) {
	src := randomPixels(4096, 1)
	px := make([]Pixel, len(src))
	b.SetBytes(int64(len(src) * PixelSize))
	for b.Loop() {
		copy(px, src)
		applyRange(k, px)
	}
}

func BenchmarkBaseUnmult(b *testing.B) { benchmarkKernel(b, BaseUnmult) }
func BenchmarkVecUnmult(b *testing.B)  { benchmarkKernel(b, VecUnmult) }

func BenchmarkApply1080p(b *testing.B) {
	const w, h = 1920, 1080
	pool := workerpool.New(0)
	defer pool.Close()
	src := randomPixels(w*h, 2)
	px := make([]Pixel, len(src))

	for _, k := range kernels {
		b.Run(k.name+"/static", func(b *testing.B) {
			b.SetBytes(int64(w * h * PixelSize))
			for b.Loop() {
				copy(px, src)
				Apply(pool, k.kernel, px, w, h)
			}
		})
		b.Run(k.name+"/batched", func(b *testing.B) {
			b.SetBytes(int64(w * h * PixelSize))
			for b.Loop() {
				copy(px, src)
				ApplyBatched(pool, k.kernel, px, w, h, 0)
			}
		})
	}
}
