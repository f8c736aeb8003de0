package formats

const (
	jpegMarker   = 0xFF
	jpegSOI      = 0xD8
	jpegAPP0     = 0xE0
	jpegAPP15    = 0xEF
	jpegSOFFirst = 0xC0
	jpegSOFLast  = 0xCF

	// marker(2) length(2) precision(1) height(2) width(2)
	jpegSOFHeightOffset = 5
	jpegSOFWidthOffset  = 7
	jpegSOFLen          = 9
)

// ExtractJPEG scans for the first start-of-frame marker and reads the frame
// size from it.
//
// The stream must open with SOI immediately followed by an APPn marker. The
// scan then advances one byte at a time and does not skip over segment
// payloads, so a 0xFF 0xCn pair inside a segment is taken as a frame header.
// The first match wins.
func ExtractJPEG(data []byte) (Dimensions, bool) {
	if len(data) < 4 {
		return Dimensions{}, false
	}
	if data[0] != jpegMarker || data[1] != jpegSOI || data[2] != jpegMarker {
		return Dimensions{}, false
	}
	if data[3] < jpegAPP0 || data[3] > jpegAPP15 {
		return Dimensions{}, false
	}

	r := bigEndian(data)
	for i := 4; r.has(i, 2); i++ {
		if data[i] != jpegMarker {
			continue
		}
		if m := data[i+1]; m < jpegSOFFirst || m > jpegSOFLast {
			continue
		}
		if !r.has(i, jpegSOFLen) {
			// every later position is shorter still
			return Dimensions{}, false
		}
		return r.dims16(i+jpegSOFWidthOffset, i+jpegSOFHeightOffset)
	}

	return Dimensions{}, false
}
