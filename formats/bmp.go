package formats

// BMP layout: 14-byte file header, then the DIB header whose first field is
// its own size. Only BITMAPINFOHEADER is read.
const (
	bmpDIBSizeOffset  = 14
	bmpWidthOffset    = 18
	bmpHeightOffset   = 22
	bmpHeaderLen      = 26
	bmpInfoHeaderSize = 40
)

// ExtractBMP reads width and height from a BITMAPINFOHEADER. Other DIB header
// variants (core, V4, V5) are rejected.
//
// Both fields are read as unsigned values, so a top-down bitmap stored with a
// negative height reports its two's complement.
func ExtractBMP(data []byte) (Dimensions, bool) {
	if len(data) < bmpHeaderLen {
		return Dimensions{}, false
	}
	r := littleEndian(data)
	size, ok := r.uint32(bmpDIBSizeOffset)
	if !ok || size != bmpInfoHeaderSize {
		return Dimensions{}, false
	}
	return r.dims32(bmpWidthOffset, bmpHeightOffset)
}
