// Command chili renders shadow layout styles to images.
package main

import (
	"fmt"
	"os"

	"github.com/design2/chili/cmd/chili/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
