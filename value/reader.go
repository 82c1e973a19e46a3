package value

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/kezzal/variant-go/bitwidth"
	"github.com/kezzal/variant-go/endian"
	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/metadata"
)

// Reader is a zero-copy view over an encoded value buffer. It borrows raw;
// the caller must keep raw alive for Reader's lifetime.
type Reader struct {
	raw    []byte
	meta   *metadata.Ref
	engine endian.EndianEngine
}

// OpenValue wraps raw as a Reader. meta may be nil if the caller only needs
// positional access (Array elements, or Object fields by numeric id); it is
// required for Reader.Child and ObjectReader.FieldByKey.
func OpenValue(raw []byte, meta *metadata.Ref, engine endian.EndianEngine) Reader {
	return Reader{raw: raw, meta: meta, engine: engine}
}

// OpenValueLE is OpenValue with the native little-endian engine, the right
// choice for buffers produced by this package's writers.
func OpenValueLE(raw []byte, meta *metadata.Ref) Reader {
	return OpenValue(raw, meta, endian.GetLittleEndianEngine())
}

// Raw returns the underlying byte slice this Reader views.
func (r Reader) Raw() []byte {
	return r.raw
}

// BasicType returns the value's 2-bit basic type.
func (r Reader) BasicType() (BasicType, error) {
	if len(r.raw) < 1 {
		return 0, errs.ErrTruncatedBuffer
	}

	bt, _ := decodeHeader(r.raw[0])
	return bt, nil
}

// PrimitiveID returns the value's primitive type id. Returns ErrKindMismatch
// if the value's basic type isn't Primitive.
func (r Reader) PrimitiveID() (PrimitiveID, error) {
	bt, err := r.BasicType()
	if err != nil {
		return 0, err
	}
	if bt != BasicPrimitive {
		return 0, errs.ErrKindMismatch
	}

	_, rest := decodeHeader(r.raw[0])
	return PrimitiveID(rest), nil
}

// IsNull reports whether the value is the Null primitive.
func (r Reader) IsNull() (bool, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return false, err
	}

	return id == PrimitiveNull, nil
}

// Bool returns the value's BoolTrue/BoolFalse payload.
func (r Reader) Bool() (bool, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return false, err
	}

	switch id {
	case PrimitiveBoolTrue:
		return true, nil
	case PrimitiveBoolFalse:
		return false, nil
	default:
		return false, errs.ErrTypeMismatch
	}
}

// Int64 returns the value's Int64 payload.
func (r Reader) Int64() (int64, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return 0, err
	}
	if id != PrimitiveInt64 {
		return 0, errs.ErrTypeMismatch
	}
	if len(r.raw) < 9 {
		return 0, errs.ErrTruncatedBuffer
	}

	return int64(r.engine.Uint64(r.raw[1:9])), nil
}

// Float64 returns the value's Float64 payload.
func (r Reader) Float64() (float64, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return 0, err
	}
	if id != PrimitiveFloat64 {
		return 0, errs.ErrTypeMismatch
	}
	if len(r.raw) < 9 {
		return 0, errs.ErrTruncatedBuffer
	}

	return math.Float64frombits(r.engine.Uint64(r.raw[1:9])), nil
}

// String returns the value's String payload.
func (r Reader) String() (string, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return "", err
	}
	if id != PrimitiveString {
		return "", errs.ErrTypeMismatch
	}
	if len(r.raw) < 5 {
		return "", errs.ErrTruncatedBuffer
	}

	n := int(binary.LittleEndian.Uint32(r.raw[1:5]))
	if n < 0 || len(r.raw) < 5+n {
		return "", errs.ErrTruncatedBuffer
	}

	b := r.raw[5 : 5+n]
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return string(b), nil
}

// Decimal returns the value's decimal coefficient and scale, regardless of
// whether it was stored as Decimal4, Decimal8, or Decimal16.
func (r Reader) Decimal() (Int128, int, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return Int128{}, 0, err
	}

	// Decimal coefficients are fixed little-endian by the wire format,
	// unlike Int64/Float64, so they bypass r.engine the same way Writer's
	// Decimal bypasses it.
	switch id {
	case PrimitiveDecimal4:
		if len(r.raw) < 6 {
			return Int128{}, 0, errs.ErrTruncatedBuffer
		}

		scale := int(r.raw[1])
		v, err := bitwidth.ReadLE(r.raw, 2, bitwidth.W4)
		if err != nil {
			return Int128{}, 0, err
		}
		return Int128FromInt64(v), scale, nil
	case PrimitiveDecimal8:
		if len(r.raw) < 10 {
			return Int128{}, 0, errs.ErrTruncatedBuffer
		}

		scale := int(r.raw[1])
		v, err := bitwidth.ReadLE(r.raw, 2, bitwidth.W8)
		if err != nil {
			return Int128{}, 0, err
		}
		return Int128FromInt64(v), scale, nil
	case PrimitiveDecimal16:
		if len(r.raw) < 18 {
			return Int128{}, 0, errs.ErrTruncatedBuffer
		}

		scale := int(r.raw[1])
		lo := binary.LittleEndian.Uint64(r.raw[2:10])
		hi := int64(binary.LittleEndian.Uint64(r.raw[10:18]))
		return Int128{Hi: hi, Lo: lo}, scale, nil
	default:
		return Int128{}, 0, errs.ErrTypeMismatch
	}
}

// Object views the value as an ObjectReader. Returns ErrKindMismatch if the
// value's basic type isn't Object.
func (r Reader) Object() (ObjectReader, error) {
	bt, err := r.BasicType()
	if err != nil {
		return ObjectReader{}, err
	}
	if bt != BasicObject {
		return ObjectReader{}, errs.ErrKindMismatch
	}

	return openObject(r.raw, r.meta, r.engine)
}

// Array views the value as an ArrayReader. Returns ErrKindMismatch if the
// value's basic type isn't Array.
func (r Reader) Array() (ArrayReader, error) {
	bt, err := r.BasicType()
	if err != nil {
		return ArrayReader{}, err
	}
	if bt != BasicArray {
		return ArrayReader{}, errs.ErrKindMismatch
	}

	return openArray(r.raw, r.meta, r.engine)
}

// Child is a convenience for Object().FieldByKey(key).
func (r Reader) Child(key string) (Reader, error) {
	obj, err := r.Object()
	if err != nil {
		return Reader{}, err
	}

	return obj.FieldByKey(key)
}
