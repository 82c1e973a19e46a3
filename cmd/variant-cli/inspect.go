package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect file",
	Short: "Prints a Variant buffer's shape without decoding it to JSON",
	Long:  "Prints a Variant buffer's shape without decoding it to JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		requireNoError(runInspect(args[0]))
	},
}

func runInspect(sourceFile string) error {
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

	fmt.Printf("metadata: %s dictionary entries, %s\n", humanize.Comma(int64(ref.Len())), humanize.Bytes(uint64(len(metaBytes))))
	fmt.Printf("values:   %s\n", humanize.Bytes(uint64(len(valBytes))))

	r := value.OpenValueLE(valBytes, &ref)
	bt, err := r.BasicType()
	if err != nil {
		return fmt.Errorf("reading basic type: %w", err)
	}

	switch bt {
	case value.BasicObject:
		obj, err := r.Object()
		if err != nil {
			return err
		}
		fmt.Printf("shape:    object, %d fields\n", obj.NumElements())

	case value.BasicArray:
		arr, err := r.Array()
		if err != nil {
			return err
		}
		fmt.Printf("shape:    array, %d elements\n", arr.NumElements())

	case value.BasicPrimitive:
		id, err := r.PrimitiveID()
		if err != nil {
			return err
		}
		fmt.Printf("shape:    primitive, id=%d\n", id)

	default:
		fmt.Printf("shape:    unknown basic type %d\n", bt)
	}

	return nil
}
