package unmult_test

import (
	"fmt"

	"github.com/ajroetker/go-unmult/hwy/contrib/unmult"
)

func ExampleUnmult() {
	// Half-intensity red premultiplied by half alpha.
	pixels := []unmult.Pixel{{B: 0, G: 0, R: 128, A: 128}}
	unmult.Unmult(pixels, 1, 1)
	fmt.Println(pixels[0])
	// Output: {0 0 255 64}
}

func ExampleUnmultBytes() {
	// Two BGRA pixels: fully transparent, then opaque grey.
	buf := []byte{10, 20, 30, 0, 128, 128, 128, 255}
	unmult.UnmultBytes(buf, 2, 1)
	fmt.Println(buf)
	// Output: [0 0 0 0 255 255 255 128]
}
