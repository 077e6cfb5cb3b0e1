// Command pegc is a small external collaborator for package peg: it reads
// a .peg grammar file (internal/dslgrammar's minimal surface), constructs
// the matching peg.Parser tree, and runs it against an input, printing the
// resulting CPT. It intentionally does not emit source code to any target
// language — that is explicitly out of the core's scope (spec §1) and is
// left to a real DSL compiler, of which this is only a stand-in caller.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
