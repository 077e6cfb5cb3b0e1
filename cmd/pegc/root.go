package main

import (
	"github.com/spf13/cobra"

	peg "github.com/clarete/pegcombinator"
)

// cfg holds the process-wide Config the teacher's config.go shape is
// reused for (see /root/module/config.go); pegc only ever touches the
// printer.color knob, set from --no-color by each subcommand.
var cfg = peg.NewConfig()

var rootCmd = &cobra.Command{
	Use:   "pegc",
	Short: "Construct and exercise peg.Parser grammars described in .peg files",
	Long: `pegc is a thin driver around package peg: it reads a small PEG-like
grammar file, compiles it into a peg.Parser tree using peg's own
combinators (no bytecode, no source-code emission to other languages),
and runs it against an input, printing the resulting concrete parse tree.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colorized tree output")
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}
