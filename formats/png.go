package formats

// PNG layout: 8-byte signature, then the IHDR chunk whose length(4) and
// type(4) precede width(4) and height(4), both big-endian.
const (
	pngWidthOffset  = 16
	pngHeightOffset = 20
	pngHeaderLen    = 24
)

// ExtractPNG reads the image size from the IHDR chunk.
func ExtractPNG(data []byte) (Dimensions, bool) {
	if len(data) < pngHeaderLen {
		return Dimensions{}, false
	}
	return bigEndian(data).dims32(pngWidthOffset, pngHeightOffset)
}
