package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	peg "github.com/clarete/pegcombinator"
	"github.com/clarete/pegcombinator/internal/dslgrammar"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar.peg>",
		Short: "Load a grammar once and parse one line of input at a time",
		Example: `  pegc repl arith.peg`,
		Args:    cobra.ExactArgs(1),
		RunE:    runRepl,
	}
	rootCmd.AddCommand(cmd)
}

// runRepl replaces the teacher's raw bufio.Scanner-based -interactive loop
// (cmd/langlang/main.go) with github.com/chzyer/readline, which gives line
// editing and history for free; the grammar is loaded once and each line
// typed at the prompt is parsed as a fresh top-level input.
func runRepl(cmd *cobra.Command, args []string) error {
	grammarPath := args[0]
	noColor, _ := cmd.Flags().GetBool("no-color")
	cfg.SetBool("printer.color", !noColor)

	src, err := os.ReadFile(grammarPath)
	if err != nil {
		return fmt.Errorf("pegc repl: cannot read grammar %s: %w", grammarPath, err)
	}

	a := peg.NewArena()
	defer a.Free()
	rules, start, err := dslgrammar.Load(a, src)
	if err != nil {
		return fmt.Errorf("pegc repl: %w", err)
	}
	root := rules[start]

	rl, err := readline.New(start + "> ")
	if err != nil {
		return fmt.Errorf("pegc repl: cannot start readline: %w", err)
	}
	defer rl.Close()

	pterm.Info.Println(fmt.Sprintf("loaded %s, entry rule %q; ctrl-d to quit", grammarPath, start))
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pegc repl: %w", err)
		}
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		session := peg.Parse(root, []byte(line))
		if !session.OK() {
			pterm.Error.Println(peg.ErrorString("<repl>", session.Err))
		} else {
			pterm.Println(renderCPT(session.Root))
		}
		session.Close()
	}
}
