// Command unitconv parses a quantity and converts it to another unit.
//
//	unitconv "100 km" --to mi
//	unitconv --absolute "20 degC" --to degF --format json
//	unitconv units Length
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
