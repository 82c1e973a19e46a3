package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/fastjson"

	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/internal/pool"
	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

var encodeOut string

var encodeCmd = &cobra.Command{
	Use:   "encode file",
	Short: "Encodes a JSON document as a Variant metadata/value buffer pair",
	Long:  "Encodes a JSON document as a Variant metadata/value buffer pair",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runEncode(args[0], encodeOut))
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "Output file (default: stdout)")
}

func runEncode(sourceFile, outFile string) error {
	text, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourceFile, err)
	}

	var p fastjson.Parser
	root, err := p.ParseBytes(text)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrParse, err)
	}

	keys := make(map[string]struct{})
	collectEncodeKeys(root, keys)

	dictKeys, releaseDictKeys := pool.GetStringSlice(0)
	defer releaseDictKeys()
	for k := range keys {
		dictKeys = append(dictKeys, k)
	}

	meta := metadata.BuildMetadata(dictKeys)
	ref, err := metadata.OpenMetadata(meta)
	if err != nil {
		return err
	}

	w := value.NewLittleEndianWriter()
	val, err := encodeJSONValue(w, root, nil, &ref)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outFile, err)
		}
		defer f.Close()
		out = f
	}

	return writeContainer(out, meta, val)
}

func collectEncodeKeys(v *fastjson.Value, keys map[string]struct{}) {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return
		}
		obj.Visit(func(key []byte, vv *fastjson.Value) {
			keys[string(key)] = struct{}{}
			collectEncodeKeys(vv, keys)
		})
	case fastjson.TypeArray:
		arr, err := v.Array()
		if err != nil {
			return
		}
		for _, e := range arr {
			collectEncodeKeys(e, keys)
		}
	}
}

// encodeJSONValue mirrors columnar.encodeJSONValue: the CLI encodes one
// standalone document rather than a batch of rows sharing a dictionary,
// but the recursive shape is identical.
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
