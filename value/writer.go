package value

import (
	"encoding/binary"
	"math"

	"github.com/kezzal/variant-go/bitwidth"
	"github.com/kezzal/variant-go/endian"
	"github.com/kezzal/variant-go/errs"
)

// Writer emits primitive variant values. It holds only an EndianEngine, so
// a single Writer can be shared freely across goroutines; all state lives
// in the caller-supplied buffer.
//
// Int64 and Float64 are the only primitives whose payload is a full
// machine word, so they are the only ones whose byte order is pluggable;
// every other width in the format (string lengths, decimal coefficients,
// offsets, field ids) is fixed little-endian by the wire format itself.
type Writer struct {
	engine endian.EndianEngine
}

// NewWriter returns a Writer that encodes Int64 and Float64 payloads using
// engine.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{engine: engine}
}

// NewLittleEndianWriter returns a Writer using the native little-endian
// engine, the right choice unless interoperating with a big-endian peer.
func NewLittleEndianWriter() *Writer {
	return NewWriter(endian.GetLittleEndianEngine())
}

// Null appends a Null primitive.
func (w *Writer) Null(buf []byte) []byte {
	return append(buf, primitiveHeader(PrimitiveNull))
}

// Bool appends a BoolTrue or BoolFalse primitive.
func (w *Writer) Bool(buf []byte, v bool) []byte {
	id := PrimitiveBoolFalse
	if v {
		id = PrimitiveBoolTrue
	}

	return append(buf, primitiveHeader(id))
}

// Int64 appends an Int64 primitive.
func (w *Writer) Int64(buf []byte, v int64) []byte {
	buf = append(buf, primitiveHeader(PrimitiveInt64))
	return w.engine.AppendUint64(buf, uint64(v))
}

// Float64 appends a Float64 primitive.
func (w *Writer) Float64(buf []byte, v float64) []byte {
	buf = append(buf, primitiveHeader(PrimitiveFloat64))
	return w.engine.AppendUint64(buf, math.Float64bits(v))
}

// String appends a String primitive.
func (w *Writer) String(buf []byte, s string) []byte {
	buf = append(buf, primitiveHeader(PrimitiveString))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// Decimal appends the narrowest of Decimal4/Decimal8/Decimal16 that can
// hold value, using a two-sided fits-in-width test so the boundary values
// and negative coefficients are sized correctly. scale must be in [0, 38].
func (w *Writer) Decimal(buf []byte, value Int128, scale int) ([]byte, error) {
	if scale < 0 || scale > 38 {
		return nil, errs.ErrScaleTooLarge
	}

	if value.FitsInInt64() {
		v := value.AsInt64()
		if bitwidth.FitsIn(v, bitwidth.W4) {
			buf = append(buf, primitiveHeader(PrimitiveDecimal4), byte(scale))
			return bitwidth.WriteLE(buf, v, bitwidth.W4), nil
		}

		buf = append(buf, primitiveHeader(PrimitiveDecimal8), byte(scale))
		return bitwidth.WriteLE(buf, v, bitwidth.W8), nil
	}

	buf = append(buf, primitiveHeader(PrimitiveDecimal16), byte(scale))
	buf = binary.LittleEndian.AppendUint64(buf, value.Lo)
	return binary.LittleEndian.AppendUint64(buf, uint64(value.Hi)), nil
}
