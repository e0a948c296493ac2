package main

import (
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"
)

// colorEnabled reports whether stdout is a terminal that can render ANSI
// color, gating hexDump's coloring the way the teacher's xs.xs.go gates
// raw-mode decisions on isatty.IsTerminal.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// hexDump prints b as space-separated hex bytes, coloring every other byte
// dim when stdout is a terminal, purely for readability of the demo's
// output.
func hexDump(label string, b []byte) {
	fmt.Println(label)
	color := colorEnabled()
	for i, v := range b {
		if color && i%2 == 1 {
			fmt.Printf("\x1b[2m%02x\x1b[0m ", v)
		} else {
			fmt.Printf("%02x ", v)
		}
	}
	fmt.Println()
}
