// Command dashctl runs the campaign table pipeline offline: it generates a
// seeded dataset, then prints a page of it or writes an export file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
