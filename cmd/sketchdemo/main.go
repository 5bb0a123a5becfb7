// Command sketchdemo renders a generative composition with the sketch
// library and writes it to PNG.
//
// Every flag can also be set from the environment with the SKETCH_ prefix
// (SKETCH_WIDTH, SKETCH_PALETTE_FILE, ...) or from a config file passed with
// --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
