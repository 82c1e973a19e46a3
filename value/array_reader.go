package value

import (
	"encoding/binary"

	"github.com/kezzal/variant-go/bitwidth"
	"github.com/kezzal/variant-go/endian"
	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/metadata"
)

// ArrayReader is a zero-copy view over an Array value's offsets and value
// bytes.
type ArrayReader struct {
	raw    []byte
	meta   *metadata.Ref
	engine endian.EndianEngine

	numElements int
	ow          bitwidth.Width
	offsetsOff  int
	valuesOff   int
}

func openArray(raw []byte, meta *metadata.Ref, engine endian.EndianEngine) (ArrayReader, error) {
	if len(raw) < 1 {
		return ArrayReader{}, errs.ErrTruncatedBuffer
	}

	bt, rest := decodeHeader(raw[0])
	if bt != BasicArray {
		return ArrayReader{}, errs.ErrKindMismatch
	}

	ow := bitwidth.FromMinusOne(rest & 0b11)
	isLarge := rest&(1<<2) != 0

	pos := 1

	var n int
	if isLarge {
		if len(raw) < pos+4 {
			return ArrayReader{}, errs.ErrTruncatedBuffer
		}
		n = int(binary.LittleEndian.Uint32(raw[pos : pos+4]))
		pos += 4
	} else {
		if len(raw) < pos+1 {
			return ArrayReader{}, errs.ErrTruncatedBuffer
		}
		n = int(int8(raw[pos]))
		pos++
	}
	if n < 0 {
		return ArrayReader{}, errs.ErrInvalidHeader
	}

	offsetsOff := pos
	valuesOff := offsetsOff + int(ow)*(n+1)
	if valuesOff > len(raw) {
		return ArrayReader{}, errs.ErrTruncatedBuffer
	}

	last, err := bitwidth.ReadLE(raw, offsetsOff+int(ow)*n, ow)
	if err != nil {
		return ArrayReader{}, err
	}
	if valuesOff+int(last) > len(raw) {
		return ArrayReader{}, errs.ErrTruncatedBuffer
	}

	return ArrayReader{
		raw: raw, meta: meta, engine: engine,
		numElements: n, ow: ow,
		offsetsOff: offsetsOff, valuesOff: valuesOff,
	}, nil
}

// NumElements returns the array's element count.
func (a ArrayReader) NumElements() int {
	return a.numElements
}

func (a ArrayReader) offsetAt(i int) (int64, error) {
	return bitwidth.ReadLE(a.raw, a.offsetsOff+int(a.ow)*i, a.ow)
}

// Element returns a Reader over the i'th element, bounded by the
// monotonic offsets[i] and offsets[i+1].
func (a ArrayReader) Element(i int) (Reader, error) {
	if i < 0 || i >= a.numElements {
		return Reader{}, errs.ErrKeyNotFound
	}

	start, err := a.offsetAt(i)
	if err != nil {
		return Reader{}, err
	}
	end, err := a.offsetAt(i + 1)
	if err != nil {
		return Reader{}, err
	}
	if start < 0 || end < start || a.valuesOff+int(end) > len(a.raw) {
		return Reader{}, errs.ErrTruncatedBuffer
	}

	return Reader{
		raw:    a.raw[a.valuesOff+int(start) : a.valuesOff+int(end)],
		meta:   a.meta,
		engine: a.engine,
	}, nil
}
