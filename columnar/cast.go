package columnar

import (
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

// CastBoolToVariants encodes each boolean in bools as a single-byte
// BoolTrue/BoolFalse variant, sharing one empty metadata dictionary across
// the whole batch. Nulls in the input produce null rows.
func CastBoolToVariants(mem memory.Allocator, bools []bool, isNull []bool, opts ...IngestOption) (Column, error) {
	if len(bools) != len(isNull) {
		return Column{}, errs.ErrUnsupportedInput
	}

	return castScalarsToVariants(mem, len(bools), isNull, opts, func(w *value.Writer, i int) []byte {
		return w.Bool(nil, bools[i])
	})
}

// CastInt64ToVariants encodes each element of ints as an Int64 variant,
// sharing one empty metadata dictionary across the whole batch. Nulls in
// the input produce null rows.
func CastInt64ToVariants(mem memory.Allocator, ints []int64, isNull []bool, opts ...IngestOption) (Column, error) {
	if len(ints) != len(isNull) {
		return Column{}, errs.ErrUnsupportedInput
	}

	return castScalarsToVariants(mem, len(ints), isNull, opts, func(w *value.Writer, i int) []byte {
		return w.Int64(nil, ints[i])
	})
}

// CastFloat64ToVariants encodes each element of floats as a Float64
// variant, sharing one empty metadata dictionary across the whole batch.
// Nulls in the input produce null rows.
func CastFloat64ToVariants(mem memory.Allocator, floats []float64, isNull []bool, opts ...IngestOption) (Column, error) {
	if len(floats) != len(isNull) {
		return Column{}, errs.ErrUnsupportedInput
	}

	return castScalarsToVariants(mem, len(floats), isNull, opts, func(w *value.Writer, i int) []byte {
		return w.Float64(nil, floats[i])
	})
}

// CastStringToVariants encodes each element of strings as a String
// variant, sharing one empty metadata dictionary across the whole batch.
// Nulls in the input produce null rows.
func CastStringToVariants(mem memory.Allocator, strs []string, isNull []bool, opts ...IngestOption) (Column, error) {
	if len(strs) != len(isNull) {
		return Column{}, errs.ErrUnsupportedInput
	}

	return castScalarsToVariants(mem, len(strs), isNull, opts, func(w *value.Writer, i int) []byte {
		return w.String(nil, strs[i])
	})
}

// castScalarsToVariants is the shared shape behind the Cast family: one
// empty metadata dictionary for the whole batch (no field/element ever
// needs a dictionary lookup for these flat primitive casts), with each
// row either null or encoded by encode(i).
func castScalarsToVariants(mem memory.Allocator, n int, isNull []bool, opts []IngestOption, encode func(w *value.Writer, i int) []byte) (Column, error) {
	cfg, err := newIngestConfig(opts...)
	if err != nil {
		return Column{}, err
	}

	emptyMeta := cfg.intern(metadata.BuildMetadata(nil))
	b := newRowsBuilder(mem, emptyMeta)
	w := value.NewLittleEndianWriter()

	for i := 0; i < n; i++ {
		if isNull[i] {
			b.appendNull()
			continue
		}

		b.appendValue(encode(w, i))
	}

	return b.finish(), nil
}
