package unmult

import "testing"

func TestPixelSize(t *testing.T) {
	if PixelSize != 4 {
		t.Errorf("PixelSize = %d, want 4", PixelSize)
	}
}

func TestAsPixelsAliases(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	px := AsPixels(buf)
	if len(px) != 2 {
		t.Fatalf("len = %d, want 2", len(px))
	}
	if px[1] != (Pixel{B: 5, G: 6, R: 7, A: 8}) {
		t.Errorf("px[1] = %v", px[1])
	}
	px[0].R = 99
	if buf[2] != 99 {
		t.Errorf("write through pixel not visible in buffer: %v", buf)
	}
	if b := AsBytes(px); &b[0] != &buf[0] || len(b) != len(buf) {
		t.Error("AsBytes does not alias the original buffer")
	}
}

func TestAsPixelsEmpty(t *testing.T) {
	if px := AsPixels(nil); px != nil {
		t.Errorf("AsPixels(nil) = %v", px)
	}
	if b := AsBytes(nil); b != nil {
		t.Errorf("AsBytes(nil) = %v", b)
	}
}

func TestAsPixelsBadLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for length 5")
		}
	}()
	AsPixels(make([]byte, 5))
}

func TestPackBGRA(t *testing.T) {
	p := Pixel{B: 0x11, G: 0x22, R: 0x33, A: 0x44}
	if got := PackBGRA(p); got != 0x44332211 {
		t.Errorf("PackBGRA = %#08x, want 0x44332211", got)
	}
	if got := UnpackBGRA(0x44332211); got != p {
		t.Errorf("UnpackBGRA = %v, want %v", got, p)
	}
}
