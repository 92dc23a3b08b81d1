// Command qrgrid renders QR codes as labeled module grids for tracing by
// hand, and opens an interactive viewer with hover inspection.
//
// Usage:
//
//	qrgrid render "https://example.com" -o grid.png --regions
//	qrgrid render "hello" -o grid.png --all-levels
//	qrgrid inspect "hello" --at 0,8
//	qrgrid view --file payload.txt --watch
//	qrgrid config show
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qrgrid:", err)
		os.Exit(1)
	}
}
