// Package bitwidth chooses and reads/writes the minimal little-endian
// integer width used throughout the variant format for offsets, counts, and
// field ids.
package bitwidth

import (
	"encoding/binary"

	"github.com/kezzal/variant-go/errs"
)

// Width is one of the four byte widths the variant wire format uses to
// encode an offset, a count, or a field id.
type Width int

const (
	W1 Width = 1
	W2 Width = 2
	W4 Width = 4
	W8 Width = 8
)

// signedMax returns the maximum value representable in a signed integer of
// the given byte width.
func signedMax(w Width) int64 {
	switch w {
	case W1:
		return 1<<7 - 1
	case W2:
		return 1<<15 - 1
	case W4:
		return 1<<31 - 1
	case W8:
		return 1<<63 - 1
	default:
		return 0
	}
}

func signedMin(w Width) int64 {
	switch w {
	case W1:
		return -1 << 7
	case W2:
		return -1 << 15
	case W4:
		return -1 << 31
	case W8:
		return -1 << 63
	default:
		return 0
	}
}

// FitsIn reports whether value fits in the signed range of width w.
func FitsIn(value int64, w Width) bool {
	return value >= signedMin(w) && value <= signedMax(w)
}

// WidthFor returns the smallest width w such that max fits in w's signed
// range. max must be non-negative; it is a programmer error otherwise.
func WidthFor(max int64) Width {
	switch {
	case max <= signedMax(W1):
		return W1
	case max <= signedMax(W2):
		return W2
	case max <= signedMax(W4):
		return W4
	default:
		return W8
	}
}

// MinusOne encodes a width as the 2-bit "size_minus_one" field used by every
// variant header: 1,2,4,8 -> 0,1,2,3.
func MinusOne(w Width) byte {
	switch w {
	case W1:
		return 0
	case W2:
		return 1
	case W4:
		return 2
	case W8:
		return 3
	default:
		return 0
	}
}

// FromMinusOne is the inverse of MinusOne.
func FromMinusOne(b byte) Width {
	switch b & 0b11 {
	case 0:
		return W1
	case 1:
		return W2
	case 2:
		return W4
	default:
		return W8
	}
}

// WriteLE appends w little-endian bytes of value to buf, reinterpreted as a
// signed integer of that width. value must already fit in w (see FitsIn);
// callers that violate this are a programmer error, not a wire-format
// concern, so WriteLE does not itself validate range.
func WriteLE(buf []byte, value int64, w Width) []byte {
	switch w {
	case W1:
		return append(buf, byte(int8(value)))
	case W2:
		return binary.LittleEndian.AppendUint16(buf, uint16(int16(value)))
	case W4:
		return binary.LittleEndian.AppendUint32(buf, uint32(int32(value)))
	default:
		return binary.LittleEndian.AppendUint64(buf, uint64(value))
	}
}

// ReadLE reads w little-endian bytes from b starting at offset and returns
// them as a signed integer of that width.
func ReadLE(b []byte, offset int, w Width) (int64, error) {
	if offset < 0 || offset+int(w) > len(b) {
		return 0, errs.ErrTruncatedBuffer
	}

	switch w {
	case W1:
		return int64(int8(b[offset])), nil
	case W2:
		return int64(int16(binary.LittleEndian.Uint16(b[offset:]))), nil
	case W4:
		return int64(int32(binary.LittleEndian.Uint32(b[offset:]))), nil
	default:
		return int64(binary.LittleEndian.Uint64(b[offset:])), nil
	}
}
