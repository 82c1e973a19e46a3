package columnar

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/valyala/fastjson"

	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/internal/pool"
	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

// VariantsFromJSON parses each element of texts as JSON and encodes a
// variant column sharing one metadata dictionary collected across the
// whole batch: every object key appearing anywhere in any row, at any
// nesting depth, is a dictionary member.
//
// A top-level JSON null, or a SQL-null input row (isNull[i] true),
// produces a null row. A nested JSON null is encoded as a Null primitive,
// distinct from a null row. Any parse failure aborts the whole batch; no
// partial output is produced.
func VariantsFromJSON(mem memory.Allocator, texts []string, isNull []bool, opts ...IngestOption) (Column, error) {
	if len(texts) != len(isNull) {
		return Column{}, errs.ErrUnsupportedInput
	}

	cfg, err := newIngestConfig(opts...)
	if err != nil {
		return Column{}, err
	}

	var p fastjson.Parser

	keys := make(map[string]struct{})
	rowIsNull := make([]bool, len(texts))

	for i, text := range texts {
		if isNull[i] {
			rowIsNull[i] = true
			continue
		}

		v, err := p.Parse(text)
		if err != nil {
			return Column{}, errs.ErrParse
		}
		if v.Type() == fastjson.TypeNull {
			rowIsNull[i] = true
			continue
		}

		collectKeys(v, keys)
	}

	dictKeys, releaseDictKeys := pool.GetStringSlice(0)
	defer releaseDictKeys()
	for k := range keys {
		dictKeys = append(dictKeys, k)
	}

	sharedMetadata := cfg.intern(metadata.BuildMetadata(dictKeys))
	ref, err := metadata.OpenMetadata(sharedMetadata)
	if err != nil {
		return Column{}, err
	}

	b := newRowsBuilder(mem, sharedMetadata)
	w := value.NewLittleEndianWriter()

	rowBuf := pool.GetValueBuffer()
	defer pool.PutValueBuffer(rowBuf)

	for i, text := range texts {
		if rowIsNull[i] {
			b.appendNull()
			continue
		}

		v, err := p.Parse(text)
		if err != nil {
			return Column{}, errs.ErrParse
		}

		rowBuf.Reset()
		encoded, err := encodeJSONValue(w, v, rowBuf.Bytes(), &ref)
		if err != nil {
			return Column{}, err
		}

		b.appendValue(encoded)
	}

	return b.finish(), nil
}

// collectKeys walks v, recording every object key reachable from it (at
// any depth, including inside arrays) into keys.
func collectKeys(v *fastjson.Value, keys map[string]struct{}) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return
		}

		obj.Visit(func(key []byte, vv *fastjson.Value) {
			keys[string(key)] = struct{}{}
			collectKeys(vv, keys)
		})
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return
		}

		for _, e := range arr {
			collectKeys(e, keys)
		}
	}
}

// encodeJSONValue recursively encodes v into buf, resolving object keys
// through meta. Numeric values with no fractional part and within int64
// range are written as Int64; fastjson does not preserve the original
// int/float lexical distinction, so this is a best-effort heuristic rather
// than a token-faithful one.
func encodeJSONValue(w *value.Writer, v *fastjson.Value, buf []byte, meta *metadata.Ref) ([]byte, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return w.Null(buf), nil

	case fastjson.TypeTrue:
		return w.Bool(buf, true), nil

	case fastjson.TypeFalse:
		return w.Bool(buf, false), nil

	case fastjson.TypeNumber:
		f, err := v.Float64()
		if err != nil {
			return nil, errs.ErrParse
		}
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return w.Int64(buf, int64(f)), nil
		}

		return w.Float64(buf, f), nil

	case fastjson.TypeString:
		sb, err := v.StringBytes()
		if err != nil {
			return nil, errs.ErrParse
		}

		return w.String(buf, string(sb)), nil

	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return nil, errs.ErrParse
		}

		ab := value.NewArrayBuilder(buf, len(arr))

		var elemBuf []byte
		for _, e := range arr {
			elemBuf, err = encodeJSONValue(w, e, elemBuf[:0], meta)
			if err != nil {
				return nil, err
			}
			ab.Append(elemBuf)
		}

		return ab.Finish(), nil

	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, errs.ErrParse
		}

		type pair struct {
			key string
			val *fastjson.Value
		}

		pairs := make([]pair, 0, obj.Len())
		obj.Visit(func(key []byte, vv *fastjson.Value) {
			pairs = append(pairs, pair{key: string(key), val: vv})
		})

		ob := value.NewObjectBuilder(buf, meta, len(pairs))

		var fieldBuf []byte
		for _, p := range pairs {
			fieldBuf, err = encodeJSONValue(w, p.val, fieldBuf[:0], meta)
			if err != nil {
				return nil, err
			}
			if err := ob.Append(p.key, fieldBuf); err != nil {
				return nil, err
			}
		}

		return ob.Finish(), nil

	default:
		return nil, errs.ErrUnsupportedInput
	}
}
