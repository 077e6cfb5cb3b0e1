package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	peg "github.com/clarete/pegcombinator"
	"github.com/clarete/pegcombinator/internal/dslgrammar"
)

var buildFlags = struct {
	input     *string
	outputDir *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "build <grammar.peg>",
		Short: "Compile a .peg grammar and run it against an input, printing the CPT",
		Example: `  pegc build arith.peg --input expr.txt
  pegc build arith.peg --input expr.txt --output-dir=out`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}
	buildFlags.input = cmd.Flags().StringP("input", "i", "", "input file to parse (default: stdin)")
	buildFlags.outputDir = cmd.Flags().String("output-dir", "", "directory to write the rendered CPT to (default: stdout)")
	rootCmd.AddCommand(cmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	grammarPath := args[0]
	noColor, _ := cmd.Flags().GetBool("no-color")
	cfg.SetBool("printer.color", !noColor)

	rules, start, input, err := loadGrammarAndInput(grammarPath, *buildFlags.input)
	if err != nil {
		return err
	}

	session := peg.Parse(rules[start], input)
	defer session.Close()

	if !session.OK() {
		return fmt.Errorf("%s", peg.ErrorString(inputLabel(*buildFlags.input), session.Err))
	}

	return emit(*buildFlags.outputDir, grammarPath, renderCPT(session.Root))
}

// loadGrammarAndInput is shared by build and watch: it reads the grammar
// file, compiles it via dslgrammar.Load into a fresh arena, and reads the
// input bytes either from a named file or stdin.
func loadGrammarAndInput(grammarPath, inputPath string) (map[string]*peg.Parser, string, []byte, error) {
	src, err := os.ReadFile(grammarPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("pegc: cannot read grammar %s: %w", grammarPath, err)
	}

	a := peg.NewArena()
	rules, start, err := dslgrammar.Load(a, src)
	if err != nil {
		return nil, "", nil, fmt.Errorf("pegc: %w", err)
	}

	var input []byte
	if inputPath == "" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return nil, "", nil, fmt.Errorf("pegc: cannot read input: %w", err)
	}
	return rules, start, input, nil
}

// renderCPT honors the "printer.color" Config knob set from --no-color:
// pterm's colorized tree when enabled, the plain cpt_printer.c-style
// rendering otherwise.
func renderCPT(root *peg.CPT) string {
	if cfg.GetBool("printer.color") {
		return peg.Print(root)
	}
	return peg.PrintPlain(root)
}

func inputLabel(inputPath string) string {
	if inputPath == "" {
		return "<stdin>"
	}
	return inputPath
}

// emit writes text either to stdout (outputDir == "") or to
// <outputDir>/<grammar base name without extension>.cpt.txt, creating
// outputDir if it doesn't exist yet, per spec.md §6's "--output-dir DIR"
// CLI surface.
func emit(outputDir, grammarPath, text string) error {
	if outputDir == "" {
		pterm.Println(text)
		return nil
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("pegc: cannot create output dir %s: %w", outputDir, err)
	}
	base := strings.TrimSuffix(filepath.Base(grammarPath), filepath.Ext(grammarPath))
	outPath := filepath.Join(outputDir, base+".cpt.txt")
	if err := os.WriteFile(outPath, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("pegc: cannot write %s: %w", outPath, err)
	}
	pterm.Success.Println(fmt.Sprintf("wrote %s", outPath))
	return nil
}
