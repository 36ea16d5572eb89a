package imageio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaqueFrame(w, h int) *Frame {
	f := NewFrame(w, h)
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i+0] = byte(i)
		f.Pix[i+1] = byte(i >> 3)
		f.Pix[i+2] = byte(255 - i)
		f.Pix[i+3] = 255
	}
	return f
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.png":        FormatPNG,
		"dir/B.PNG":    FormatPNG,
		"c.bmp":        FormatBMP,
		"d.tif":        FormatTIFF,
		"e.tiff":       FormatTIFF,
		"f.webp":       FormatWebP,
		"g.bgra":       FormatRaw,
		"h.bgra.zst":   FormatRawZstd,
		"frames/i.zst": FormatRawZstd,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("x.gif")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "png", FormatPNG.String())
	assert.Equal(t, "bgra.zst", FormatRawZstd.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, NewFrame(3, 2).Validate())
	assert.NoError(t, NewFrame(0, 0).Validate())
	assert.ErrorIs(t, (&Frame{Width: 2, Height: 2, Pix: make([]byte, 15)}).Validate(), ErrShortFrame)
	assert.ErrorIs(t, (&Frame{Width: -1, Height: 2}).Validate(), ErrShortFrame)
}

func TestToBGRAPremultiplies(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 128})
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	f := ToBGRA(img)
	require.Equal(t, 2, f.Width)
	require.Equal(t, 1, f.Height)
	assert.Equal(t, []byte{0, 0, 128, 128, 30, 20, 10, 255}, f.Pix)
}

func TestToBGRASubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(2, 3, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	sub := img.SubImage(image.Rect(2, 3, 4, 4))

	f := ToBGRA(sub)
	assert.Equal(t, 2, f.Width)
	assert.Equal(t, 1, f.Height)
	assert.Equal(t, []byte{3, 2, 1, 4, 0, 0, 0, 0}, f.Pix)
}

func TestFromBGRA(t *testing.T) {
	f := &Frame{Width: 1, Height: 1, Pix: []byte{30, 20, 10, 64}}
	img, err := FromBGRA(f)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 64}, img.NRGBAAt(0, 0))

	_, err = FromBGRA(&Frame{Width: 2, Height: 1, Pix: []byte{1}})
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestEncodeDecodeOpaque(t *testing.T) {
	for _, format := range []Format{FormatPNG, FormatBMP, FormatTIFF, FormatRaw, FormatRawZstd} {
		t.Run(format.String(), func(t *testing.T) {
			want := opaqueFrame(17, 5)
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, want))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRawKeepsTransparency(t *testing.T) {
	want := &Frame{Width: 2, Height: 1, Pix: []byte{1, 2, 3, 0, 200, 100, 50, 7}}
	for _, format := range []Format{FormatRaw, FormatRawZstd} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, format, want))
		got, err := Decode(&buf, format)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReadRawErrors(t *testing.T) {
	_, err := ReadRaw(bytes.NewReader([]byte("BGR")))
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = ReadRaw(bytes.NewReader([]byte("RGBA\x01\x00\x00\x00\x01\x00\x00\x00abcd")))
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = ReadRaw(bytes.NewReader([]byte("BGRA\xff\xff\xff\xff\xff\xff\xff\xff")))
	assert.ErrorIs(t, err, ErrBadHeader)

	_, err = ReadRaw(bytes.NewReader([]byte("BGRA\x02\x00\x00\x00\x01\x00\x00\x00abcd")))
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestEncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, FormatWebP, NewFrame(1, 1)), ErrUnsupportedFormat)
	_, err := Decode(&buf, FormatUnknown)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	want := opaqueFrame(8, 8)
	for _, name := range []string{"a.png", "b.bgra.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, want))
		got, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := ReadFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
