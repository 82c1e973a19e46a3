// Command variant-cli encodes, decodes, and inspects Variant binary
// buffers from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func requireNoError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func main() {
	cobra.OnInitialize()

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)

	requireNoError(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:   "variant-cli",
	Short: "variant-cli encodes, decodes, and inspects Variant binary buffers",
	Long:  "variant-cli encodes, decodes, and inspects Variant binary buffers",
}
