package formats

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Canonical 1x1 encodings.
const (
	png1x1Base64  = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="
	jpeg1x1Base64 = "/9j/4AAQSkZJRgABAQEASABIAAD/2wBDAP//////////////////////////////////////////////////////////////////////////////////////wAALCAABAAEBAREA/8QAAF3/2gAIAQEAAD8A/wD/2Q=="
	gif1x1Base64  = "R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"
	bmp1x1Base64  = "Qk06AAAAAAAAADYAAAAoAAAAAQAAAAEAAAABABgAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=="
)

func decodeFixture(t testing.TB, s string) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return data
}

// minimalGIF is a 26-byte GIF89a: header, 1x1 screen descriptor, a two-entry
// global color table and the trailer.
func minimalGIF() []byte {
	return []byte{
		0x47, 0x49, 0x46, 0x38, 0x39, 0x61, // "GIF89a"
		0x01, 0x00, // Width (1)
		0x01, 0x00, // Height (1)
		0x80,       // Packed fields
		0x00,       // Background color
		0x00,       // Aspect ratio
		0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, // Global color table
		0x2C, 0x00, 0x00, 0x00, 0x00, 0x01, // Image separator (truncated)
		0x3B, // Trailer
	}
}

// minimalBMP builds a BMP file header plus BITMAPINFOHEADER for w x h and a
// single 24-bit pixel row.
func minimalBMP(w, h uint32) []byte {
	return []byte{
		0x42, 0x4D, // "BM"
		0x3A, 0x00, 0x00, 0x00, // File size
		0x00, 0x00, // Reserved
		0x00, 0x00, // Reserved
		0x36, 0x00, 0x00, 0x00, // Offset to pixel data
		0x28, 0x00, 0x00, 0x00, // DIB header size (40)
		byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24), // Width
		byte(h), byte(h >> 8), byte(h >> 16), byte(h >> 24), // Height
		0x01, 0x00, // Planes
		0x18, 0x00, // Bits per pixel (24)
		0x00, 0x00, 0x00, 0x00, // Compression
		0x04, 0x00, 0x00, 0x00, // Image size
		0x00, 0x00, 0x00, 0x00, // X pixels per meter
		0x00, 0x00, 0x00, 0x00, // Y pixels per meter
		0x00, 0x00, 0x00, 0x00, // Colors used
		0x00, 0x00, 0x00, 0x00, // Important colors
		0x00, 0x00, 0x00, 0x00, // Pixel row
	}
}

// jpegWithSOF builds SOI, an APP0 segment and a SOF segment using marker.
func jpegWithSOF(marker byte, w, h uint16) []byte {
	return []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE0, 0x00, 0x10, // APP0 segment (16 bytes)
		0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x01, 0x01, 0x00, 0x48, 0x00, 0x48, 0x00, 0x00, // JFIF header
		0xFF, marker, 0x00, 0x0B, // SOF segment (11 bytes)
		0x08,                   // Precision
		byte(h >> 8), byte(h), // Height
		byte(w >> 8), byte(w), // Width
		0x01,                   // Components
		0x01, 0x11, 0x00, // Component spec
		0xFF, 0xD9, // EOI
	}
}

func encodePNG(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeGIF(t testing.TB, w, h int) []byte {
	t.Helper()
	palette := []color.Color{color.Black, color.White}
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, image.NewPaletted(image.Rect(0, 0, w, h), palette), nil))
	return buf.Bytes()
}

// encodeJPEG returns a baseline JPEG. The standard encoder writes DQT right
// after SOI, so an APP0 (JFIF) segment is spliced in to make the stream
// acceptable to ExtractJPEG.
func encodeJPEG(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), &jpeg.Options{Quality: 50}))
	return withJFIF(buf.Bytes())
}

func encodeRawJPEG(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h)), &jpeg.Options{Quality: 50}))
	return buf.Bytes()
}

func withJFIF(data []byte) []byte {
	app0 := []byte{
		0xFF, 0xE0, 0x00, 0x10,
		0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
	}
	out := make([]byte, 0, len(data)+len(app0))
	out = append(out, data[:2]...)
	out = append(out, app0...)
	return append(out, data[2:]...)
}

func encodeBMP(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeTIFF(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func riff(form string) []byte {
	b := []byte("RIFF\x24\x00\x00\x00")
	b = append(b, form...)
	return append(b, "VP8 "...)
}

func ftyp(brand string) []byte {
	b := []byte{0x00, 0x00, 0x00, 0x18}
	b = append(b, "ftyp"...)
	b = append(b, brand...)
	return append(b, 0x00, 0x00, 0x00, 0x00)
}
