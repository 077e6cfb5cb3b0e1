package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	peg "github.com/clarete/pegcombinator"
)

var watchFlags = struct {
	input *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "watch <grammar.peg>",
		Short: "Rebuild and re-run a grammar against --input every time the grammar file changes",
		Example: `  pegc watch arith.peg --input expr.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
	watchFlags.input = cmd.Flags().StringP("input", "i", "", "input file to re-parse on every grammar change (required)")
	rootCmd.AddCommand(cmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	grammarPath := args[0]
	if *watchFlags.input == "" {
		return fmt.Errorf("pegc watch: --input is required")
	}
	noColor, _ := cmd.Flags().GetBool("no-color")
	cfg.SetBool("printer.color", !noColor)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("pegc watch: cannot start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(grammarPath); err != nil {
		return fmt.Errorf("pegc watch: cannot watch %s: %w", grammarPath, err)
	}

	rebuild := func() {
		rules, start, input, err := loadGrammarAndInput(grammarPath, *watchFlags.input)
		if err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		session := peg.Parse(rules[start], input)
		defer session.Close()
		if !session.OK() {
			pterm.Error.Println(peg.ErrorString(inputLabel(*watchFlags.input), session.Err))
			return
		}
		pterm.Println(renderCPT(session.Root))
	}

	pterm.Info.Println(fmt.Sprintf("watching %s (ctrl-c to stop)", grammarPath))
	rebuild()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pterm.Info.Println(fmt.Sprintf("rebuilding after %s", ev.Op))
			rebuild()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			pterm.Error.Println(werr.Error())
		}
	}
}
