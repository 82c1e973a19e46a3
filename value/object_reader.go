package value

import (
	"encoding/binary"

	"github.com/kezzal/variant-go/bitwidth"
	"github.com/kezzal/variant-go/endian"
	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/metadata"
)

// ObjectReader is a zero-copy view over an Object value's field ids,
// offsets, and value bytes.
type ObjectReader struct {
	raw    []byte
	meta   *metadata.Ref
	engine endian.EndianEngine

	numElements int
	fw          bitwidth.Width // field id width
	ow          bitwidth.Width // field offset width
	fieldIDsOff int
	offsetsOff  int
	valuesOff   int
}

func openObject(raw []byte, meta *metadata.Ref, engine endian.EndianEngine) (ObjectReader, error) {
	if len(raw) < 1 {
		return ObjectReader{}, errs.ErrTruncatedBuffer
	}

	bt, rest := decodeHeader(raw[0])
	if bt != BasicObject {
		return ObjectReader{}, errs.ErrKindMismatch
	}

	ow := bitwidth.FromMinusOne(rest & 0b11)
	fw := bitwidth.FromMinusOne((rest >> 2) & 0b11)
	isLarge := rest&(1<<4) != 0

	pos := 1

	var n int
	if isLarge {
		if len(raw) < pos+4 {
			return ObjectReader{}, errs.ErrTruncatedBuffer
		}
		n = int(binary.LittleEndian.Uint32(raw[pos : pos+4]))
		pos += 4
	} else {
		if len(raw) < pos+1 {
			return ObjectReader{}, errs.ErrTruncatedBuffer
		}
		n = int(int8(raw[pos]))
		pos++
	}
	if n < 0 {
		return ObjectReader{}, errs.ErrInvalidHeader
	}

	fieldIDsOff := pos
	offsetsOff := fieldIDsOff + int(fw)*n
	valuesOff := offsetsOff + int(ow)*(n+1)
	if valuesOff > len(raw) {
		return ObjectReader{}, errs.ErrTruncatedBuffer
	}

	last, err := bitwidth.ReadLE(raw, offsetsOff+int(ow)*n, ow)
	if err != nil {
		return ObjectReader{}, err
	}
	if valuesOff+int(last) > len(raw) {
		return ObjectReader{}, errs.ErrTruncatedBuffer
	}

	return ObjectReader{
		raw: raw, meta: meta, engine: engine,
		numElements: n, fw: fw, ow: ow,
		fieldIDsOff: fieldIDsOff, offsetsOff: offsetsOff, valuesOff: valuesOff,
	}, nil
}

// NumElements returns the object's field count.
func (o ObjectReader) NumElements() int {
	return o.numElements
}

// Meta returns the metadata dictionary this object resolves field ids and
// keys against, or nil if it was opened without one.
func (o ObjectReader) Meta() *metadata.Ref {
	return o.meta
}

// FieldID returns the metadata field id stored at position i, in
// ascending-sorted stored order.
func (o ObjectReader) FieldID(i int) (int, error) {
	if i < 0 || i >= o.numElements {
		return 0, errs.ErrKeyNotFound
	}

	v, err := bitwidth.ReadLE(o.raw, o.fieldIDsOff+int(o.fw)*i, o.fw)
	return int(v), err
}

func (o ObjectReader) offsetAt(i int) (int64, error) {
	return bitwidth.ReadLE(o.raw, o.offsetsOff+int(o.ow)*i, o.ow)
}

// Field binary-searches the stored field ids for id and returns a Reader
// over the matching value. Object offsets are not guaranteed monotonic, so
// the value's upper bound is offsets[n] (the total value-region length),
// not offsets[hit+1]; the value is self-delimited by its own header.
func (o ObjectReader) Field(id int) (Reader, error) {
	lo, hi := 0, o.numElements
	for lo < hi {
		mid := (lo + hi) / 2

		v, err := o.FieldID(mid)
		if err != nil {
			return Reader{}, err
		}

		switch {
		case v == id:
			start, err := o.offsetAt(mid)
			if err != nil {
				return Reader{}, err
			}
			end, err := o.offsetAt(o.numElements)
			if err != nil {
				return Reader{}, err
			}
			if start < 0 || end < start || o.valuesOff+int(end) > len(o.raw) {
				return Reader{}, errs.ErrTruncatedBuffer
			}
			return Reader{
				raw:    o.raw[o.valuesOff+int(start) : o.valuesOff+int(end)],
				meta:   o.meta,
				engine: o.engine,
			}, nil
		case v < id:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return Reader{}, errs.ErrKeyNotFound
}

// FieldByKey resolves key through the object's metadata dictionary and
// returns the matching field's value.
func (o ObjectReader) FieldByKey(key string) (Reader, error) {
	if o.meta == nil {
		return Reader{}, errs.ErrKeyNotFound
	}

	id, err := o.meta.Find(key)
	if err != nil {
		return Reader{}, err
	}

	return o.Field(id)
}
