// Package imageio moves pixels between files and the tightly packed BGRA8
// frames the unmult transform operates on.
//
// Decoded images are converted to premultiplied BGRA8, the layout a
// compositing host hands over. Encoders take the transformed frame as
// straight (non-premultiplied) BGRA8.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var (
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
	ErrShortFrame        = errors.New("imageio: frame buffer does not match its dimensions")
	ErrBadHeader         = errors.New("imageio: bad raw frame header")
)

// Format identifies a file encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatBMP
	FormatTIFF
	FormatWebP // decode only
	FormatRaw
	FormatRawZstd
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatWebP:
		return "webp"
	case FormatRaw:
		return "bgra"
	case FormatRawZstd:
		return "bgra.zst"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".bgra.zst"), strings.HasSuffix(name, ".zst"):
		return FormatRawZstd, nil
	case strings.HasSuffix(name, ".bgra"):
		return FormatRaw, nil
	}
	switch filepath.Ext(name) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWebP, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Frame is a tightly packed BGRA8 pixel buffer.
type Frame struct {
	Width, Height int
	Pix           []byte
}

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// Validate checks that Pix holds exactly Width*Height pixels.
func (f *Frame) Validate() error {
	if f.Width < 0 || f.Height < 0 || len(f.Pix) != f.Width*f.Height*4 {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrShortFrame, f.Width, f.Height, len(f.Pix))
	}
	return nil
}

// ToBGRA renders img into a new premultiplied BGRA8 frame.
func ToBGRA(img image.Image) *Frame {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	f := NewFrame(b.Dx(), b.Dy())
	swapRB(f.Pix, rgba.Pix[:len(f.Pix)])
	return f
}

// FromBGRA wraps a straight-alpha frame as an *image.NRGBA (copying).
func FromBGRA(f *Frame) (*image.NRGBA, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	swapRB(img.Pix, f.Pix)
	return img, nil
}

// swapRB copies src to dst exchanging bytes 0 and 2 of every pixel, which
// converts RGBA8 to BGRA8 and back.
func swapRB(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}

// Decode reads one frame in format f.
func Decode(r io.Reader, f Format) (*Frame, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case FormatRaw:
		return ReadRaw(r)
	case FormatRawZstd:
		return ReadRawZstd(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: decode %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return ToBGRA(img), nil
}

// Encode writes a straight-alpha frame in format f.
func Encode(w io.Writer, f Format, fr *Frame) error {
	switch f {
	case FormatRaw:
		return WriteRaw(w, fr)
	case FormatRawZstd:
		return WriteRawZstd(w, fr)
	case FormatPNG, FormatBMP, FormatTIFF:
	default:
		return fmt.Errorf("%w: encode %s", ErrUnsupportedFormat, f)
	}

	img, err := FromBGRA(fr)
	if err != nil {
		return err
	}
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// ReadFile decodes the file at path, picking the format from its extension.
func ReadFile(path string) (*Frame, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer fh.Close()
	return Decode(fh, format)
}

// WriteFile encodes fr to path, picking the format from its extension.
func WriteFile(path string, fr *Frame) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Encode(fh, format, fr)
}
