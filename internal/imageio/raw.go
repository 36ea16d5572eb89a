package imageio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Raw frames are a 12 byte header followed by width*height BGRA8 pixels:
//
//	magic  [4]byte  "BGRA"
//	width  uint32   little-endian
//	height uint32   little-endian
const rawHeaderSize = 12

var rawMagic = [4]byte{'B', 'G', 'R', 'A'}

// maxRawPixels bounds allocations driven by untrusted headers (256 MP).
const maxRawPixels = 1 << 28

// ReadRaw reads an uncompressed raw frame.
func ReadRaw(r io.Reader) (*Frame, error) {
	var hdr [rawHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if [4]byte(hdr[:4]) != rawMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadHeader, hdr[:4])
	}
	w := int(binary.LittleEndian.Uint32(hdr[4:8]))
	h := int(binary.LittleEndian.Uint32(hdr[8:12]))
	if uint64(w)*uint64(h) > maxRawPixels {
		return nil, fmt.Errorf("%w: %dx%d too large", ErrBadHeader, w, h)
	}

	f := NewFrame(w, h)
	if _, err := io.ReadFull(r, f.Pix); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShortFrame, err)
	}
	return f, nil
}

// WriteRaw writes an uncompressed raw frame.
func WriteRaw(w io.Writer, f *Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	var hdr [rawHeaderSize]byte
	copy(hdr[:4], rawMagic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(f.Width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(f.Height))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(f.Pix)
	return err
}

// ReadRawZstd reads a zstd-compressed raw frame.
func ReadRawZstd(r io.Reader) (*Frame, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()
	return ReadRaw(dec)
}

// WriteRawZstd writes a zstd-compressed raw frame.
func WriteRawZstd(w io.Writer, f *Frame) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("zstd writer: %w", err)
	}
	if err := WriteRaw(enc, f); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
