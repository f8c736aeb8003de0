package formats

import "fmt"

// Dimensions is the pixel size read from an image header.
type Dimensions struct {
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

// String formats the dimensions as WxH.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Extract dispatches to the header reader for format. ok is false when the
// format has no reader, when data is not longer than the format's minimum
// sample, or when the reader rejects the header.
func Extract(data []byte, format Format) (d Dimensions, ok bool) {
	info := format.info()
	if info.extract == nil {
		return Dimensions{}, false
	}
	if info.minSample > 0 && len(data) <= info.minSample {
		return Dimensions{}, false
	}
	return info.extract(data)
}

// Sniff classifies data and extracts its dimensions in one call.
func Sniff(data []byte) (Format, Dimensions, bool) {
	f := Detect(data)
	d, ok := Extract(data, f)
	return f, d, ok
}
