// Package variant provides a self-describing, schema-flexible binary
// encoding for semi-structured values (objects, arrays, and primitives),
// modeled after the Variant type used by Apache Spark and Apache
// DataFusion.
//
// A Variant value is always paired with a metadata buffer: a sorted,
// deduplicated dictionary of the object field names it references. The
// metadata buffer may be shared across many values (for example, every
// row of a columnar batch), so object field names cost one dictionary
// entry rather than one copy per occurrence.
//
// # Basic usage
//
// Building a value directly with the metadata and value packages:
//
//	meta := metadata.BuildMetadata([]string{"user_id", "score"})
//	ref, _ := metadata.OpenMetadata(meta)
//
//	w := value.NewLittleEndianWriter()
//	ob := value.NewObjectBuilder(nil, &ref, 2)
//	ob.Append("score", w.Float64(nil, 9.5))
//	ob.Append("user_id", w.Int64(nil, 42))
//	buf := ob.Finish()
//
//	r := value.OpenValueLE(buf, &ref)
//	obj, _ := r.Object()
//	score, _ := obj.FieldByKey("score")
//
// This package provides convenience wrappers around the metadata and value
// packages for the most common use cases. For fine-grained control (custom
// endianness, explicit field-id resolution) use those packages directly;
// columnar ingestion lives in the columnar package and is not wrapped here.
package variant

import (
	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

// BuildMetadata deduplicates and sorts keys, returning an encoded
// metadata buffer. See metadata.BuildMetadata.
func BuildMetadata(keys []string) []byte {
	return metadata.BuildMetadata(keys)
}

// OpenMetadata parses an encoded metadata buffer for lookups. See
// metadata.OpenMetadata.
func OpenMetadata(raw []byte) (metadata.Ref, error) {
	return metadata.OpenMetadata(raw)
}

// Open wraps a value buffer for reading against meta, using the
// little-endian wire format this package's writers produce. See
// value.OpenValueLE.
func Open(raw []byte, meta *metadata.Ref) value.Reader {
	return value.OpenValueLE(raw, meta)
}

// NewWriter returns a primitive value encoder using the little-endian
// wire format. See value.NewLittleEndianWriter.
func NewWriter() *value.Writer {
	return value.NewLittleEndianWriter()
}

// NewObjectBuilder starts encoding an Object value with n fields,
// resolving each field's name through meta. See value.NewObjectBuilder.
func NewObjectBuilder(target []byte, meta *metadata.Ref, n int) *value.ObjectBuilder {
	return value.NewObjectBuilder(target, meta, n)
}

// NewArrayBuilder starts encoding an Array value with n elements. See
// value.NewArrayBuilder.
func NewArrayBuilder(target []byte, n int) *value.ArrayBuilder {
	return value.NewArrayBuilder(target, n)
}
