package formats

// GIF layout: "GIF87a"/"GIF89a" followed by the logical screen descriptor,
// which starts with width(2) and height(2), little-endian.
const (
	gifWidthOffset  = 6
	gifHeightOffset = 8
	gifHeaderLen    = 10
)

// ExtractGIF reads the logical screen size.
func ExtractGIF(data []byte) (Dimensions, bool) {
	if len(data) < gifHeaderLen {
		return Dimensions{}, false
	}
	return littleEndian(data).dims16(gifWidthOffset, gifHeightOffset)
}
