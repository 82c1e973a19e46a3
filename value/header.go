// Package value implements the variant value buffer: a single
// self-delimiting header-plus-payload encoding for primitives, objects, and
// arrays, readable and writable without a schema.
package value

// BasicType is the 2-bit class encoded in the low bits of every value
// header byte.
type BasicType uint8

const (
	BasicPrimitive   BasicType = 0
	BasicShortString BasicType = 1 // reserved, not implemented by Writer
	BasicObject      BasicType = 2
	BasicArray       BasicType = 3
)

// PrimitiveID is the 6-bit sub-discriminator carried in the high bits of a
// Primitive header byte.
type PrimitiveID uint8

const (
	PrimitiveNull      PrimitiveID = 0
	PrimitiveBoolTrue  PrimitiveID = 1
	PrimitiveBoolFalse PrimitiveID = 2
	PrimitiveInt64     PrimitiveID = 6
	PrimitiveFloat64   PrimitiveID = 7
	PrimitiveDecimal4  PrimitiveID = 8
	PrimitiveDecimal8  PrimitiveID = 9
	PrimitiveDecimal16 PrimitiveID = 10
	PrimitiveString    PrimitiveID = 16
)

func primitiveHeader(id PrimitiveID) byte {
	return byte(BasicPrimitive) | byte(id)<<2
}

func decodeHeader(b byte) (BasicType, byte) {
	return BasicType(b & 0b11), b >> 2
}
