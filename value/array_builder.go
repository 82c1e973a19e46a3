package value

import (
	"encoding/binary"

	"github.com/kezzal/variant-go/bitwidth"
)

// ArrayBuilder accumulates element payloads into a scratch buffer and
// emits an Array value into target on Finish.
//
// The offset width is fixed at construction from the element count, not
// from the total payload length written by Append; this mirrors the
// layout choice made by the format this package implements.
type ArrayBuilder struct {
	target   []byte
	scratch  []byte
	ow       bitwidth.Width
	n        int
	appended int
}

// NewArrayBuilder starts building an Array of n elements into target,
// returning the builder and target extended with the array's header,
// element count, and initial zero offset.
func NewArrayBuilder(target []byte, n int) *ArrayBuilder {
	isLarge := n > 127
	ow := bitwidth.WidthFor(int64(n))

	header := byte(BasicArray) | (bitwidth.MinusOne(ow) << 2)
	if isLarge {
		header |= 1 << 4
	}
	target = append(target, header)

	if isLarge {
		target = binary.LittleEndian.AppendUint32(target, uint32(n))
	} else {
		target = bitwidth.WriteLE(target, int64(n), bitwidth.W1)
	}
	target = bitwidth.WriteLE(target, 0, ow)

	return &ArrayBuilder{target: target, ow: ow, n: n}
}

// Append adds one element's already-encoded value bytes, writing the new
// running offset into target.
func (b *ArrayBuilder) Append(value []byte) {
	b.scratch = append(b.scratch, value...)
	b.target = bitwidth.WriteLE(b.target, int64(len(b.scratch)), b.ow)
	b.appended++
}

// Finish appends the accumulated scratch buffer to target and returns it.
// Callers must have called Append exactly n times.
func (b *ArrayBuilder) Finish() []byte {
	return append(b.target, b.scratch...)
}
