package imgsniff

import (
	"bytes"
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Register the WebP decoder; there is no WebP encoder.
	_ "golang.org/x/image/webp"

	"imgsniff/internal/log"
)

// jfifAPP0 is a minimal JFIF 1.01 APP0 segment with a 1:1 pixel aspect.
var jfifAPP0 = []byte{
	0xFF, 0xE0, 0x00, 0x10,
	'J', 'F', 'I', 'F', 0x00,
	0x01, 0x01, // version
	0x00,       // units
	0x00, 0x01, // X density
	0x00, 0x01, // Y density
	0x00, 0x00, // thumbnail
}

// NativeResizer resizes in process. The source is decoded with the standard
// and x/image decoders, scaled with nfnt/resize and re-encoded in the source
// format when an encoder exists (PNG, JPEG, GIF, BMP, TIFF); other formats are
// written as PNG.
type NativeResizer struct {
	Filter      resize.InterpolationFunction
	JPEGQuality int
}

// NewNativeResizer returns a NativeResizer configured from cfg. Unknown
// filter names fall back to Lanczos3.
func NewNativeResizer(cfg ResizeConfig) *NativeResizer {
	filter, ok := filters[cfg.Filter]
	if !ok {
		filter = resize.Lanczos3
	}
	quality := cfg.JPEGQuality
	if quality <= 0 {
		quality = jpeg.DefaultQuality
	}
	return &NativeResizer{Filter: filter, JPEGQuality: quality}
}

// Resize implements Resizer.
func (n *NativeResizer) Resize(ctx context.Context, img *Image, width, height int) (*Image, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", img.Format)
	}

	b := src.Bounds()
	w, h := fitWithin(b.Dx(), b.Dy(), width, height)
	log.Debug("native resize", "from", b.Size(), "to", image.Pt(w, h), "format", img.Format)
	dst := resize.Resize(uint(w), uint(h), src, n.Filter)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := n.encode(dst, img.Format)
	if err != nil {
		return nil, err
	}
	resized, err := New(data)
	if err != nil {
		return nil, errors.WithMessage(err, "native output")
	}
	resized.Source = img.Source
	return resized, nil
}

func (n *NativeResizer) encode(m image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJPEG:
		err = n.encodeJPEG(&buf, m)
	case FormatGIF:
		err = gif.Encode(&buf, m, nil)
	case FormatBMP:
		err = bmp.Encode(&buf, m)
	case FormatTIFF:
		err = tiff.Encode(&buf, m, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(&buf, m)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", format)
	}
	return buf.Bytes(), nil
}

// encodeJPEG writes a JFIF stream. The standard encoder puts DQT directly
// after SOI; an APP0 segment is inserted so the output starts SOI, APPn.
func (n *NativeResizer) encodeJPEG(buf *bytes.Buffer, m image.Image) error {
	var raw bytes.Buffer
	if err := jpeg.Encode(&raw, m, &jpeg.Options{Quality: n.JPEGQuality}); err != nil {
		return err
	}
	out := raw.Bytes()
	buf.Write(out[:2])
	buf.Write(jfifAPP0)
	buf.Write(out[2:])
	return nil
}
