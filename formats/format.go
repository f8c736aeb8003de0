package formats

import (
	"fmt"
	"strings"
)

// Format identifies an image container format.
type Format uint8

const (
	Unknown Format = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WEBP
	HEIC
	PDF
	SVG

	numFormats
)

// formatInfo holds the static properties of a format.
type formatInfo struct {
	name      string
	mime      string
	ext       string
	minSample int // 0 means no minimum
	extract   func([]byte) (Dimensions, bool)
}

var formatTable = [numFormats]formatInfo{
	Unknown: {name: "Unknown", mime: "application/octet-stream"},
	PNG:     {name: "PNG", mime: "image/png", ext: ".png", minSample: 25, extract: ExtractPNG},
	JPEG:    {name: "JPEG", mime: "image/jpeg", ext: ".jpg", extract: ExtractJPEG},
	GIF:     {name: "GIF", mime: "image/gif", ext: ".gif", minSample: 11, extract: ExtractGIF},
	TIFF:    {name: "TIFF", mime: "image/tiff", ext: ".tiff"},
	BMP:     {name: "BMP", mime: "image/bmp", ext: ".bmp", minSample: 29, extract: ExtractBMP},
	WEBP:    {name: "WEBP", mime: "image/webp", ext: ".webp"},
	HEIC:    {name: "HEIC", mime: "image/heic", ext: ".heic"},
	PDF:     {name: "PDF", mime: "application/pdf", ext: ".pdf"},
	SVG:     {name: "SVG", mime: "image/svg+xml", ext: ".svg"},
}

func (f Format) info() formatInfo {
	if f >= numFormats {
		return formatTable[Unknown]
	}
	return formatTable[f]
}

// String returns the canonical upper-case name of the format.
func (f Format) String() string {
	return f.info().name
}

// MIMEType returns the media type registered for the format.
func (f Format) MIMEType() string {
	return f.info().mime
}

// Extension returns the conventional file extension including the dot,
// or an empty string for Unknown.
func (f Format) Extension() string {
	return f.info().ext
}

// MinimumSample reports the buffer length a sample must exceed before
// dimension extraction is attempted. ok is false for formats without a
// fixed minimum.
func (f Format) MinimumSample() (n int, ok bool) {
	n = f.info().minSample
	return n, n > 0
}

// HasReader reports whether Extract can produce dimensions for the format.
func (f Format) HasReader() bool {
	return f.info().extract != nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for i := range formatTable {
		if strings.EqualFold(formatTable[i].name, name) {
			return Format(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownName, name)
}

// All returns every known format except Unknown, in declaration order.
func All() []Format {
	out := make([]Format, 0, numFormats-1)
	for f := PNG; f < numFormats; f++ {
		out = append(out, f)
	}
	return out
}
