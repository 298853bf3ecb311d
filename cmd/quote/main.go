// Command quote prices services from the live pricing configuration without
// going through the HTTP API.
package main

import (
	"os"

	"towquote/cmd/quote/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
