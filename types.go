package imgsniff

import "imgsniff/formats"

// Format identifies an image container format.
type Format = formats.Format

// Size is the pixel size read from an image header.
type Size = formats.Dimensions

const (
	FormatUnknown = formats.Unknown
	FormatPNG     = formats.PNG
	FormatJPEG    = formats.JPEG
	FormatGIF     = formats.GIF
	FormatTIFF    = formats.TIFF
	FormatBMP     = formats.BMP
	FormatWebP    = formats.WEBP
	FormatHEIC    = formats.HEIC
	FormatPDF     = formats.PDF
	FormatSVG     = formats.SVG
)
