// SPDX-License-Identifier: Unlicense OR MIT

// Command strata renders the example widget trees headlessly. It
// replays a script of input actions against an example and writes the
// final frame as a PNG image.
//
// Usage:
//
//	strata list
//	strata render counter -o counter.png --do "click 60,20" --do "click 60,20"
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
