package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

var decodeCmd = &cobra.Command{
	Use:   "decode file",
	Short: "Decodes a Variant buffer produced by \"encode\" back to JSON",
	Long:  "Decodes a Variant buffer produced by \"encode\" back to JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runDecode(args[0]))
	},
}

func runDecode(sourceFile string) error {
	raw, err := os.ReadFile(sourceFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourceFile, err)
	}

	metaBytes, valBytes, err := readContainer(raw)
	if err != nil {
		return err
	}

	ref, err := metadata.OpenMetadata(metaBytes)
	if err != nil {
		return fmt.Errorf("opening metadata: %w", err)
	}

	r := value.OpenValueLE(valBytes, &ref)
	v, err := decodeToInterface(r)
	if err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling decoded value: %w", err)
	}

	fmt.Printf("%s\n", out)
	return nil
}

// decodeToInterface walks a Variant value into a plain Go value suitable
// for encoding/json: nil, bool, int64, float64, string, []interface{}, or
// map[string]interface{}.
func decodeToInterface(r value.Reader) (interface{}, error) {
	bt, err := r.BasicType()
	if err != nil {
		return nil, err
	}

	switch bt {
	case value.BasicObject:
		obj, err := r.Object()
		if err != nil {
			return nil, err
		}

		out := make(map[string]interface{}, obj.NumElements())
		for i := 0; i < obj.NumElements(); i++ {
			id, err := obj.FieldID(i)
			if err != nil {
				return nil, err
			}
			fr, err := obj.Field(id)
			if err != nil {
				return nil, err
			}

			key, err := fieldKeyByID(obj, id)
			if err != nil {
				return nil, err
			}

			fv, err := decodeToInterface(fr)
			if err != nil {
				return nil, err
			}
			out[key] = fv
		}

		return out, nil

	case value.BasicArray:
		arr, err := r.Array()
		if err != nil {
			return nil, err
		}

		out := make([]interface{}, arr.NumElements())
		for i := 0; i < arr.NumElements(); i++ {
			er, err := arr.Element(i)
			if err != nil {
				return nil, err
			}
			ev, err := decodeToInterface(er)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}

		return out, nil

	case value.BasicPrimitive:
		return decodePrimitive(r)

	default:
		return nil, errs.ErrKindMismatch
	}
}

func decodePrimitive(r value.Reader) (interface{}, error) {
	id, err := r.PrimitiveID()
	if err != nil {
		return nil, err
	}

	switch id {
	case value.PrimitiveNull:
		return nil, nil
	case value.PrimitiveBoolTrue, value.PrimitiveBoolFalse:
		return r.Bool()
	case value.PrimitiveInt64:
		return r.Int64()
	case value.PrimitiveFloat64:
		return r.Float64()
	case value.PrimitiveDecimal4, value.PrimitiveDecimal8, value.PrimitiveDecimal16:
		coeff, scale, err := r.Decimal()
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("%v.e-%d", coeff, scale), nil
	case value.PrimitiveString:
		return r.String()
	default:
		return nil, errs.ErrTypeMismatch
	}
}

// fieldKeyByID resolves the dictionary key for a field id the object
// reader has already looked up positionally, since ObjectReader exposes
// fields by numeric id rather than by string.
func fieldKeyByID(obj value.ObjectReader, id int) (string, error) {
	return obj.Meta().Get(id)
}
