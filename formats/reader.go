package formats

import "encoding/binary"

// byteReader reads fixed-width unsigned integers at absolute offsets of a
// borrowed buffer. Every read is bounds-checked; ok is false when the field
// does not fit inside the buffer.
type byteReader struct {
	buf   []byte
	order binary.ByteOrder
}

func bigEndian(buf []byte) byteReader {
	return byteReader{buf: buf, order: binary.BigEndian}
}

func littleEndian(buf []byte) byteReader {
	return byteReader{buf: buf, order: binary.LittleEndian}
}

// has reports whether n bytes are available starting at off.
func (r byteReader) has(off, n int) bool {
	return off >= 0 && n >= 0 && off <= len(r.buf)-n
}

func (r byteReader) uint16(off int) (uint16, bool) {
	if !r.has(off, 2) {
		return 0, false
	}
	return r.order.Uint16(r.buf[off : off+2]), true
}

func (r byteReader) uint32(off int) (uint32, bool) {
	if !r.has(off, 4) {
		return 0, false
	}
	return r.order.Uint32(r.buf[off : off+4]), true
}

// dims16 reads a width/height pair of 16-bit fields.
func (r byteReader) dims16(wOff, hOff int) (Dimensions, bool) {
	w, ok := r.uint16(wOff)
	if !ok {
		return Dimensions{}, false
	}
	h, ok := r.uint16(hOff)
	if !ok {
		return Dimensions{}, false
	}
	return Dimensions{Width: uint32(w), Height: uint32(h)}, true
}

// dims32 reads a width/height pair of 32-bit fields.
func (r byteReader) dims32(wOff, hOff int) (Dimensions, bool) {
	w, ok := r.uint32(wOff)
	if !ok {
		return Dimensions{}, false
	}
	h, ok := r.uint32(hOff)
	if !ok {
		return Dimensions{}, false
	}
	return Dimensions{Width: w, Height: h}, true
}
