package formats

// Detect identifies the image format by examining the leading bytes of data.
// Only the first byte selects a case; WEBP, HEIC and PDF additionally
// require a short signature and resolve to Unknown when it is absent.
// It never fails: empty or unrecognized input yields Unknown.
func Detect(data []byte) Format {
	if len(data) == 0 {
		return Unknown
	}

	switch data[0] {
	case 0x89:
		return PNG
	case 0xFF:
		return JPEG
	case 0x47:
		return GIF
	case 0x49, 0x4D:
		return TIFF
	case 0x42:
		return BMP
	case 0x52:
		// RIFF....WEBP
		if len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP" {
			return WEBP
		}
	case 0x00:
		// ISO BMFF: size(4) "ftyp"(4) brand(4)
		if len(data) >= 12 {
			switch string(data[8:12]) {
			case "heic", "heix", "hevc", "hevx":
				return HEIC
			}
		}
	case 0x25:
		// %PDF
		if len(data) >= 4 && string(data[1:4]) == "PDF" {
			return PDF
		}
	case 0x3C:
		return SVG
	}

	return Unknown
}
