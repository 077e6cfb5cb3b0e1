package peg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Print renders a CPT as an indented tree, one node per line, each line
// shaped "tag[name] (start..end)" with the matched text quoted when the
// node is a leaf, following the enter/exit-visitor shape of
// original_source/lib/cpt_printer.c adapted onto pterm's tree renderer
// (the way npillmayer-gorgo/terex/terexlang/trepl builds a pterm.TreeNode
// from its own structure) instead of hand-rolled indentation bookkeeping.
// pterm auto-detects non-terminal output and degrades to plain text, so
// this is safe to call when stdout is redirected to a file.
func Print(root *CPT) string {
	if root == nil {
		return "<nil>"
	}
	tree := cptToTreeNode(root)
	s, err := pterm.DefaultTree.WithRoot(tree).Srender()
	if err != nil {
		return sprintPlain(root, 0)
	}
	return s
}

func cptToTreeNode(n *CPT) pterm.TreeNode {
	node := pterm.TreeNode{Text: describeCPT(n)}
	for _, c := range n.Children {
		node.Children = append(node.Children, cptToTreeNode(c))
	}
	return node
}

func describeCPT(n *CPT) string {
	var sb strings.Builder
	sb.WriteString(n.Tag)
	if n.Name != "" {
		sb.WriteByte('[')
		sb.WriteString(n.Name)
		sb.WriteByte(']')
	}
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(n.Start))
	sb.WriteString("..")
	sb.WriteString(strconv.Itoa(n.End))
	sb.WriteByte(')')
	if len(n.Children) == 0 && n.Len() > 0 {
		sb.WriteString(" '")
		sb.WriteString(escapeText(n.Text()))
		sb.WriteByte('\'')
	}
	return sb.String()
}

var textEscaper = strings.NewReplacer(
	"\\", `\\`,
	"'", `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// PrintPlain renders root the same way Print does, but without pterm's
// tree-drawing/coloring, mirroring original_source/lib/cpt_printer.c's
// plain 2-space-indent output directly. Callers honoring a
// "printer.color" Config knob (see cmd/pegc) call this instead of Print
// when color is disabled.
func PrintPlain(root *CPT) string {
	if root == nil {
		return "<nil>"
	}
	return sprintPlain(root, 0)
}

// sprintPlain is the fallback used when pterm's renderer errors out; it
// mirrors the 2-space-indent, one-node-per-line shape cpt_printer.c
// produces so the fallback output is still recognizably the same format.
func sprintPlain(n *CPT, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(describeCPT(n))
	sb.WriteByte('\n')
	for _, c := range n.Children {
		sb.WriteString(sprintPlain(c, depth+1))
	}
	return sb.String()
}

// ErrorString formats a ParseError the way a CLI reports a failed parse:
// "<file>:<line>:<col>: message" with the expected/found detail on the
// next line when present.
func ErrorString(filename string, err *ParseError) string {
	loc := fmt.Sprintf("%s:%d:%d", filename, err.Line+1, err.Column+1)
	if err.Expected == "" {
		return fmt.Sprintf("%s: %s", loc, err.Message)
	}
	return fmt.Sprintf("%s: %s\n  expected %s, found %s", loc, err.Message, err.Expected, err.Found)
}
