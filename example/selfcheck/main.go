// Command selfcheck feeds every registered case its own canonical encoding
// through the oracle and verifies the round trip byte-for-byte. Useful as a
// smoke test without the C driver.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/binprobe/roundtrip"
)

func main() {
	o := roundtrip.New(nil)

	failed := 0
	for _, c := range o.Cases() {
		input, err := o.Codec().Encode(c.Canonical)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-10s encode: %v\n", c.Name, err)
			failed++
			continue
		}

		output, err := o.Run(c.ID, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-10s run: %v\n", c.Name, err)
			failed++
			continue
		}

		if !bytes.Equal(output, input) {
			fmt.Fprintf(os.Stderr, "%-10s output differs from the canonical encoding\n", c.Name)
			failed++
			continue
		}

		fmt.Printf("%-10s ok (%d bytes)\n", c.Name, len(output))
	}

	if failed > 0 {
		os.Exit(1)
	}
}
